package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type RevenueCategory string

const (
	CategoryDepositFee    RevenueCategory = "deposit_fee"
	CategoryWithdrawalFee RevenueCategory = "withdrawal_fee"
	CategoryCommission    RevenueCategory = "commission"
)

// Label is the human readable category used in exports.
func (c RevenueCategory) Label() string {
	switch c {
	case CategoryDepositFee:
		return "Deposit Fee"
	case CategoryWithdrawalFee:
		return "Withdrawal Fee"
	case CategoryCommission:
		return "Commission"
	default:
		return string(c)
	}
}

// RevenueEntry is one item of the admin revenue lists.
type RevenueEntry struct {
	Date     time.Time       `json:"date"`
	Fee      decimal.Decimal `json:"fee"`
	Amount   decimal.Decimal `json:"amount"`
	UserName string          `json:"userName"`
	Type     string          `json:"type"`
}

func (e *RevenueEntry) UnmarshalJSON(data []byte) error {
	var wire struct {
		Date          string          `json:"date"`
		CreatedAt     string          `json:"created_at"`
		Fee           json.RawMessage `json:"fee"`
		Amount        json.RawMessage `json:"amount"`
		UserName      string          `json:"userName"`
		UserNameSnake string          `json:"user_name"`
		Type          string          `json:"type"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*e = RevenueEntry{
		Date:     ParseTimestamp(firstNonEmpty(wire.Date, wire.CreatedAt)),
		Fee:      ParseAmount(wire.Fee),
		Amount:   ParseAmount(wire.Amount),
		UserName: firstNonEmpty(wire.UserName, wire.UserNameSnake),
		Type:     wire.Type,
	}
	return nil
}

// RawRevenue is the payload of GET /admin/revenue.
type RawRevenue struct {
	Total                  decimal.Decimal `json:"total"`
	Deposits               []RevenueEntry  `json:"deposits"`
	Withdrawals            []RevenueEntry  `json:"withdrawals"`
	CommissionTransactions []RevenueEntry  `json:"commissionTransactions"`
}

func (r *RawRevenue) UnmarshalJSON(data []byte) error {
	var wire struct {
		Total                  json.RawMessage `json:"total"`
		Deposits               []RevenueEntry  `json:"deposits"`
		Withdrawals            []RevenueEntry  `json:"withdrawals"`
		CommissionTransactions []RevenueEntry  `json:"commissionTransactions"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*r = RawRevenue{
		Total:                  ParseAmount(wire.Total),
		Deposits:               wire.Deposits,
		Withdrawals:            wire.Withdrawals,
		CommissionTransactions: wire.CommissionTransactions,
	}
	return nil
}

// RevenueBucket is a derived reporting row, never persisted.
type RevenueBucket struct {
	Category RevenueCategory `json:"category"`
	Fee      decimal.Decimal `json:"fee"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	UserName string          `json:"userName"`
	Type     string          `json:"type"`
}

type CategoryShare struct {
	Category RevenueCategory `json:"category"`
	Sum      decimal.Decimal `json:"sum"`
	Percent  decimal.Decimal `json:"percent"`
}

type RevenueReport struct {
	Period         string          `json:"period"`
	DepositFees    decimal.Decimal `json:"deposit_fees"`
	WithdrawalFees decimal.Decimal `json:"withdrawal_fees"`
	Commissions    decimal.Decimal `json:"commissions"`
	Total          decimal.Decimal `json:"total"`
	Breakdown      []CategoryShare `json:"breakdown"`
	Buckets        []RevenueBucket `json:"buckets"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// MonthlyBucket holds one calendar month of the earnings/withdrawals trend.
type MonthlyBucket struct {
	MonthLabel  string          `json:"month"`
	Start       time.Time       `json:"start"`
	Earnings    decimal.Decimal `json:"earnings"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
}

// TypeTotal sums canonical transactions of one type for admin listings.
type TypeTotal struct {
	Type   TransactionType `json:"type"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}
