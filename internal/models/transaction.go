package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string
type TransactionStatus string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeEarning    TransactionType = "earning"
	TypeFee        TransactionType = "fee"
	TypeCommission TransactionType = "commission"
	TypePayment    TransactionType = "payment"
	TypeRefund     TransactionType = "refund"

	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// ParseTransactionType returns the canonical type named by s, ignoring case.
func ParseTransactionType(s string) (TransactionType, bool) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeEarning, TypeFee, TypeCommission, TypePayment, TypeRefund:
		return t, true
	default:
		return "", false
	}
}

func (s TransactionStatus) IsCompleted() bool {
	return s == StatusCompleted
}

// RawTransaction is a transaction record as the remote wallet service returns it.
// Field names, number encodings and timestamps vary between endpoints, so
// decoding never fails on a single malformed field: it falls back to zero values.
type RawTransaction struct {
	ID          string
	Type        string
	Category    string
	Amount      decimal.Decimal
	Status      string
	Description string
	Method      string
	ProjectID   string
	UserName    string
	Details     json.RawMessage
	CreatedAt   time.Time
}

type rawTransactionWire struct {
	ID              json.RawMessage `json:"id"`
	TransactionID   json.RawMessage `json:"transaction_id"`
	Type            string          `json:"type"`
	TransactionType string          `json:"transaction_type"`
	Category        string          `json:"category"`
	Amount          json.RawMessage `json:"amount"`
	Status          string          `json:"status"`
	Description     string          `json:"description"`
	Note            string          `json:"note"`
	Method          string          `json:"method"`
	ProjectID       json.RawMessage `json:"project_id"`
	ProjectIDCamel  json.RawMessage `json:"projectId"`
	UserName        string          `json:"userName"`
	UserNameSnake   string          `json:"user_name"`
	Details         json.RawMessage `json:"details"`
	Metadata        json.RawMessage `json:"metadata"`
	CreatedAt       string          `json:"created_at"`
	CreatedAtCamel  string          `json:"createdAt"`
	Date            string          `json:"date"`
}

func (t *RawTransaction) UnmarshalJSON(data []byte) error {
	var w rawTransactionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	details := w.Details
	if isEmptyJSON(details) {
		details = w.Metadata
	}

	*t = RawTransaction{
		ID:          firstNonEmpty(rawScalar(w.ID), rawScalar(w.TransactionID)),
		Type:        firstNonEmpty(w.Type, w.TransactionType),
		Category:    w.Category,
		Amount:      ParseAmount(w.Amount),
		Status:      w.Status,
		Description: firstNonEmpty(w.Description, w.Note),
		Method:      w.Method,
		ProjectID:   firstNonEmpty(rawScalar(w.ProjectID), rawScalar(w.ProjectIDCamel)),
		UserName:    firstNonEmpty(w.UserName, w.UserNameSnake),
		Details:     details,
		CreatedAt:   ParseTimestamp(firstNonEmpty(w.CreatedAt, w.CreatedAtCamel, w.Date)),
	}
	return nil
}

// Transaction is the canonical form of a ledger record.
type Transaction struct {
	ID        string            `json:"id"`
	RawType   string            `json:"raw_type"`
	Type      TransactionType   `json:"type"`
	Amount    decimal.Decimal   `json:"amount"`
	Status    TransactionStatus `json:"status"`
	Metadata  Metadata          `json:"metadata"`
	CreatedAt time.Time         `json:"created_at"`
}

// Metadata is the single schema for the optional details of a transaction.
type Metadata struct {
	Method      string       `json:"method,omitempty"`
	Note        string       `json:"note,omitempty"`
	ProjectID   string       `json:"project_id,omitempty"`
	BankDetails *BankDetails `json:"bank_details,omitempty"`
}

// MethodLabel is the display value of the method, "-" when unknown.
func (m Metadata) MethodLabel() string {
	if m.Method == "" {
		return "-"
	}
	return m.Method
}

type BankDetails struct {
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	IBAN          string `json:"iban,omitempty"`
}

// TransactionFilter narrows admin and wallet transaction listings.
type TransactionFilter struct {
	Category string `form:"category"`
	Status   string `form:"status"`
	Type     string `form:"type"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts the timestamp encodings seen from the wallet service.
// Unparseable input yields the zero time.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// ParseAmount reads a JSON number or numeric string. Anything else is zero.
func ParseAmount(raw json.RawMessage) decimal.Decimal {
	s := rawScalar(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func rawScalar(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if isEmptyJSON(raw) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	}
	if raw[0] == '{' || raw[0] == '[' {
		return ""
	}
	return string(raw)
}

func isEmptyJSON(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
