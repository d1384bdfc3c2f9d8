package revenue

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"Date", "Category", "User", "Amount", "Fee", "Type"}

const exportSheet = "Revenue"

// ExportRow is one line of the platform revenue export.
type ExportRow struct {
	Date     time.Time
	Category string
	User     string
	Amount   string
	Fee      string
	Type     string
}

func (r ExportRow) values() []string {
	date := ""
	if !r.Date.IsZero() {
		date = r.Date.Format(time.RFC3339)
	}
	return []string{date, r.Category, r.User, r.Amount, r.Fee, r.Type}
}

// ExportRows merges the three revenue lists into one list sorted by date,
// newest first. Every input entry yields exactly one row.
func ExportRows(raw models.RawRevenue) []ExportRow {
	buckets := Buckets(raw)
	rows := make([]ExportRow, 0, len(buckets))
	for _, b := range buckets {
		user := b.UserName
		if user == "" {
			user = "-"
		}
		rows = append(rows, ExportRow{
			Date:     b.Date,
			Category: b.Category.Label(),
			User:     user,
			Amount:   b.Amount.StringFixed(2),
			Fee:      b.Fee.StringFixed(2),
			Type:     b.Type,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})
	return rows
}

// WriteCSV writes the header and one record per row.
func WriteCSV(w io.Writer, rows []ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.values()); err != nil {
			return fmt.Errorf("error writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the same rows as WriteCSV into a single-sheet workbook.
func WriteXLSX(w io.Writer, rows []ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("error writing xlsx header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := r.values()
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return fmt.Errorf("error writing xlsx row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing xlsx: %w", err)
	}
	return nil
}

// FileName is the download name of an export generated at now.
func FileName(now time.Time, ext string) string {
	return fmt.Sprintf("platform-revenue-%s.%s", now.Format("2006-01-02"), ext)
}
