// Package revenue aggregates platform fees and wallet activity into the
// figures shown on the admin revenue page and the wallet charts.
package revenue

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodAll   Period = "all"
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

var hundred = decimal.NewFromInt(100)

// ParsePeriod reads a period selector. The empty string means all.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "":
		return PeriodAll, nil
	case PeriodAll, PeriodToday, PeriodWeek, PeriodMonth:
		return p, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// Contains reports whether t falls in the period ending at now. Today is the
// calendar day of now in now's location; week and month are the trailing 7
// and 30 days, both bounds inclusive of the start instant.
func (p Period) Contains(t, now time.Time) bool {
	switch p {
	case PeriodToday:
		ty, tm, td := t.In(now.Location()).Date()
		ny, nm, nd := now.Date()
		return ty == ny && tm == nm && td == nd
	case PeriodWeek:
		return !t.Before(now.AddDate(0, 0, -7))
	case PeriodMonth:
		return !t.Before(now.AddDate(0, 0, -30))
	default:
		return true
	}
}

// FilterEntries keeps the entries of the period. The input is not modified.
func FilterEntries(entries []models.RevenueEntry, p Period, now time.Time) []models.RevenueEntry {
	if p == PeriodAll || p == "" {
		return append([]models.RevenueEntry(nil), entries...)
	}
	out := make([]models.RevenueEntry, 0, len(entries))
	for _, e := range entries {
		if p.Contains(e.Date, now) {
			out = append(out, e)
		}
	}
	return out
}

// Filter applies the period to each of the three revenue lists.
func Filter(raw models.RawRevenue, p Period, now time.Time) models.RawRevenue {
	return models.RawRevenue{
		Total:                  raw.Total,
		Deposits:               FilterEntries(raw.Deposits, p, now),
		Withdrawals:            FilterEntries(raw.Withdrawals, p, now),
		CommissionTransactions: FilterEntries(raw.CommissionTransactions, p, now),
	}
}

func sumFees(entries []models.RevenueEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Fee)
	}
	return sum
}

// Percent is part/total*100 rounded to two places, and zero when total is zero.
func Percent(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(2)
}

// Aggregate sums the fees of each category over the period and breaks the
// total down by category.
func Aggregate(raw models.RawRevenue, p Period, now time.Time) models.RevenueReport {
	filtered := Filter(raw, p, now)

	depositFees := sumFees(filtered.Deposits)
	withdrawalFees := sumFees(filtered.Withdrawals)
	commissions := sumFees(filtered.CommissionTransactions)
	total := depositFees.Add(withdrawalFees).Add(commissions)

	return models.RevenueReport{
		Period:         string(p),
		DepositFees:    depositFees,
		WithdrawalFees: withdrawalFees,
		Commissions:    commissions,
		Total:          total,
		Breakdown: []models.CategoryShare{
			{Category: models.CategoryDepositFee, Sum: depositFees, Percent: Percent(depositFees, total)},
			{Category: models.CategoryWithdrawalFee, Sum: withdrawalFees, Percent: Percent(withdrawalFees, total)},
			{Category: models.CategoryCommission, Sum: commissions, Percent: Percent(commissions, total)},
		},
		Buckets:     Buckets(filtered),
		GeneratedAt: now,
	}
}

// Buckets flattens the three lists into category-tagged rows, deposits first,
// then withdrawals, then commissions, each in input order.
func Buckets(raw models.RawRevenue) []models.RevenueBucket {
	out := make([]models.RevenueBucket, 0, len(raw.Deposits)+len(raw.Withdrawals)+len(raw.CommissionTransactions))
	out = appendBuckets(out, models.CategoryDepositFee, raw.Deposits)
	out = appendBuckets(out, models.CategoryWithdrawalFee, raw.Withdrawals)
	out = appendBuckets(out, models.CategoryCommission, raw.CommissionTransactions)
	return out
}

func appendBuckets(out []models.RevenueBucket, c models.RevenueCategory, entries []models.RevenueEntry) []models.RevenueBucket {
	for _, e := range entries {
		out = append(out, models.RevenueBucket{
			Category: c,
			Fee:      e.Fee,
			Amount:   e.Amount,
			Date:     e.Date,
			UserName: e.UserName,
			Type:     e.Type,
		})
	}
	return out
}
