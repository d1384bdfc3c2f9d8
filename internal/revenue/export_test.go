package revenue_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/revenue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportRows_MergesAndSortsNewestFirst(t *testing.T) {
	raw := sampleRevenue()
	raw.Deposits[0].UserName = "ana"

	rows := revenue.ExportRows(raw)

	require.Len(t, rows, len(raw.Deposits)+len(raw.Withdrawals)+len(raw.CommissionTransactions))
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Date.After(rows[i-1].Date), "row %d out of order", i)
	}
	assert.Equal(t, "Deposit Fee", rows[0].Category)
	assert.Equal(t, "ana", rows[0].User)
	assert.Equal(t, "Commission", rows[1].Category)
	assert.Equal(t, "-", rows[1].User)
	assert.Equal(t, "10.00", rows[1].Fee)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := revenue.ExportRows(sampleRevenue())

	require.NoError(t, revenue.WriteCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(rows)+1)
	assert.Equal(t, []string{"Date", "Category", "User", "Amount", "Fee", "Type"}, records[0])
	assert.Equal(t, now.Add(-1*time.Hour).Format(time.RFC3339), records[1][0])
}

func TestWriteCSV_EmptyHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, revenue.WriteCSV(&buf, revenue.ExportRows(models.RawRevenue{})))

	assert.Equal(t, "Date,Category,User,Amount,Fee,Type\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	rows := revenue.ExportRows(sampleRevenue())

	require.NoError(t, revenue.WriteXLSX(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheetRows, err := f.GetRows("Revenue")
	require.NoError(t, err)
	require.Len(t, sheetRows, len(rows)+1)
	assert.Equal(t, "Category", sheetRows[0][1])
	assert.Equal(t, rows[0].Category, sheetRows[1][1])
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "platform-revenue-2026-03-15.csv", revenue.FileName(now, "csv"))
}
