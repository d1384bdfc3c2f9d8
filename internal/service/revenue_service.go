package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/ledger"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/metrics"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/revenue"
	"github.com/shopspring/decimal"
)

type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

func (f ExportFormat) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// AdminTransactions is the normalized admin list with per-type totals.
type AdminTransactions struct {
	Transactions []models.Transaction `json:"transactions"`
	Totals       []models.TypeTotal   `json:"totals"`
}

// RevenueService builds the admin revenue views from the remote admin API.
// Period windows are evaluated in Location.
type RevenueService struct {
	API      AdminAPI
	Location *time.Location
	Now      func() time.Time
}

func NewRevenueService(api AdminAPI, loc *time.Location) *RevenueService {
	if loc == nil {
		loc = time.UTC
	}
	return &RevenueService{API: api, Location: loc, Now: time.Now}
}

func (s *RevenueService) Report(ctx context.Context, period revenue.Period) (models.RevenueReport, error) {
	raw, err := s.API.GetRevenue(ctx)
	if err != nil {
		return models.RevenueReport{}, err
	}
	return revenue.Aggregate(*raw, period, s.now()), nil
}

// Export writes the revenue rows of the period in the given format and
// returns the download file name.
func (s *RevenueService) Export(ctx context.Context, w io.Writer, period revenue.Period, format ExportFormat) (string, error) {
	raw, err := s.API.GetRevenue(ctx)
	if err != nil {
		return "", err
	}

	now := s.now()
	rows := revenue.ExportRows(revenue.Filter(*raw, period, now))

	switch format {
	case FormatXLSX:
		err = revenue.WriteXLSX(w, rows)
	default:
		format = FormatCSV
		err = revenue.WriteCSV(w, rows)
	}
	if err != nil {
		return "", err
	}

	metrics.RevenueExportsTotal.WithLabelValues(string(format)).Inc()
	return revenue.FileName(now, string(format)), nil
}

// Transactions lists the platform transactions normalized with the
// freelancer/admin vocabulary, plus count and amount per canonical type.
// The type filter is the remote's raw type vocabulary and is applied by the
// admin API only; status is checked again on the normalized records.
func (s *RevenueService) Transactions(ctx context.Context, filter models.TransactionFilter) (AdminTransactions, error) {
	raws, err := s.API.ListAdminTransactions(ctx, filter)
	if err != nil {
		return AdminTransactions{}, err
	}

	local := filter
	local.Type = ""
	txs := ledger.Filter(ledger.NormalizeAll(raws), local)
	return AdminTransactions{Transactions: txs, Totals: typeTotals(txs)}, nil
}

// Reports passes the remote report document through.
func (s *RevenueService) Reports(ctx context.Context, period revenue.Period) (json.RawMessage, error) {
	return s.API.GetReports(ctx, string(period))
}

func (s *RevenueService) now() time.Time {
	return s.Now().In(s.Location)
}

func typeTotals(txs []models.Transaction) []models.TypeTotal {
	index := make(map[models.TransactionType]int)
	var totals []models.TypeTotal
	for _, tx := range txs {
		i, ok := index[tx.Type]
		if !ok {
			i = len(totals)
			index[tx.Type] = i
			totals = append(totals, models.TypeTotal{Type: tx.Type, Amount: decimal.Zero})
		}
		totals[i].Count++
		totals[i].Amount = totals[i].Amount.Add(tx.Amount)
	}
	sort.Slice(totals, func(a, b int) bool { return totals[a].Type < totals[b].Type })
	if totals == nil {
		totals = []models.TypeTotal{}
	}
	return totals
}
