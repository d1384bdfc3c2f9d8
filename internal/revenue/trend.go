package revenue

import (
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// TrendMonths is the number of calendar months in the earnings chart.
const TrendMonths = 6

// Trend is the trailing six months of completed earnings and withdrawals,
// oldest month first.
type Trend struct {
	Buckets []models.MonthlyBucket `json:"buckets"`
	Max     decimal.Decimal        `json:"max"`
}

// MonthlyTrend buckets the completed earnings and withdrawals of txs into the
// current month of now and the five months before it. Months without activity
// are present with zero values.
func MonthlyTrend(txs []models.Transaction, now time.Time) Trend {
	loc := now.Location()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	buckets := make([]models.MonthlyBucket, TrendMonths)
	index := make(map[[2]int]int, TrendMonths)
	for i := 0; i < TrendMonths; i++ {
		start := current.AddDate(0, -(TrendMonths - 1 - i), 0)
		buckets[i] = models.MonthlyBucket{
			MonthLabel:  start.Format("Jan 2006"),
			Start:       start,
			Earnings:    decimal.Zero,
			Withdrawals: decimal.Zero,
		}
		index[[2]int{start.Year(), int(start.Month())}] = i
	}

	for _, tx := range txs {
		if !tx.Status.IsCompleted() {
			continue
		}
		at := tx.CreatedAt.In(loc)
		i, ok := index[[2]int{at.Year(), int(at.Month())}]
		if !ok {
			continue
		}
		switch {
		case tx.Type == models.TypeEarning && tx.Amount.IsPositive():
			buckets[i].Earnings = buckets[i].Earnings.Add(tx.Amount)
		case tx.Type == models.TypeWithdrawal && tx.Amount.IsNegative():
			buckets[i].Withdrawals = buckets[i].Withdrawals.Add(tx.Amount.Abs())
		}
	}

	maxValue := decimal.Zero
	for _, b := range buckets {
		maxValue = decimal.Max(maxValue, b.Earnings, b.Withdrawals)
	}

	return Trend{Buckets: buckets, Max: maxValue}
}

// BarWidth is the chart width of v as a percentage of the largest bucket
// value. The denominator never drops below 1.
func (t Trend) BarWidth(v decimal.Decimal) decimal.Decimal {
	denominator := decimal.Max(t.Max, decimal.NewFromInt(1))
	return v.Div(denominator).Mul(hundred).Round(2)
}

// TrendBar is a bucket with its chart widths precomputed.
type TrendBar struct {
	models.MonthlyBucket
	EarningsWidth    decimal.Decimal `json:"earnings_width"`
	WithdrawalsWidth decimal.Decimal `json:"withdrawals_width"`
}

func (t Trend) Bars() []TrendBar {
	bars := make([]TrendBar, len(t.Buckets))
	for i, b := range t.Buckets {
		bars[i] = TrendBar{
			MonthlyBucket:    b,
			EarningsWidth:    t.BarWidth(b.Earnings),
			WithdrawalsWidth: t.BarWidth(b.Withdrawals),
		}
	}
	return bars
}
