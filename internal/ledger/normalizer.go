// Package ledger turns raw wallet service records into canonical transactions
// and derives balances from them. Every view (wallet, admin transactions,
// revenue exports) goes through this package so the vocabularies never diverge.
package ledger

import (
	"strings"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
)

type typeRule struct {
	substrings []string
	canonical  models.TransactionType
}

// Order matters: "withdraw" must win over anything else in e.g. "withdrawal_fee".
var typeRules = []typeRule{
	{[]string{"withdraw"}, models.TypeWithdrawal},
	{[]string{"deposit", "topup", "top_up"}, models.TypeDeposit},
	{[]string{"payment", "earning", "income"}, models.TypeEarning},
	{[]string{"fee"}, models.TypeFee},
	{[]string{"commission"}, models.TypeCommission},
}

// Client wallets spend on projects and get refunds, so those two words keep
// their own meaning before the generic rules apply.
var clientRules = []typeRule{
	{[]string{"refund"}, models.TypeRefund},
	{[]string{"payment"}, models.TypePayment},
}

var pendingStatuses = map[string]struct{}{
	"pending":     {},
	"processing":  {},
	"in_progress": {},
	"queued":      {},
}

var completedStatuses = map[string]struct{}{
	"completed": {},
	"complete":  {},
	"success":   {},
	"succeeded": {},
	"paid":      {},
	"done":      {},
}

// Normalizer maps raw records to canonical ones from the point of view of a wallet role.
// The zero value uses the freelancer/admin vocabulary.
type Normalizer struct {
	Role models.Role
}

func NewNormalizer(role models.Role) Normalizer {
	return Normalizer{Role: role}
}

// Normalize is the freelancer/admin normalization of one record.
func Normalize(raw models.RawTransaction) models.Transaction {
	return Normalizer{}.Normalize(raw)
}

// NormalizeAll normalizes a list with the freelancer/admin vocabulary.
func NormalizeAll(raws []models.RawTransaction) []models.Transaction {
	return Normalizer{}.NormalizeAll(raws)
}

func (n Normalizer) Normalize(raw models.RawTransaction) models.Transaction {
	return models.Transaction{
		ID:        raw.ID,
		RawType:   raw.Type,
		Type:      n.Type(raw),
		Amount:    raw.Amount,
		Status:    NormalizeStatus(raw.Status),
		Metadata:  RecordMetadata(raw),
		CreatedAt: raw.CreatedAt,
	}
}

func (n Normalizer) NormalizeAll(raws []models.RawTransaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(raws))
	for _, raw := range raws {
		out = append(out, n.Normalize(raw))
	}
	return out
}

// Type resolves the canonical type of a raw record. An explicit category that
// names a canonical type is trusted as is. Otherwise the raw type is matched by
// substring, and when nothing matches the sign of the amount decides:
// negative is a withdrawal, anything else an earning. That last step cannot
// tell a negative refund from a withdrawal.
func (n Normalizer) Type(raw models.RawTransaction) models.TransactionType {
	if t, ok := models.ParseTransactionType(raw.Category); ok {
		return t
	}

	rawType := strings.ToLower(strings.TrimSpace(raw.Type))
	if n.Role == models.RoleClient {
		if t, ok := matchRules(clientRules, rawType); ok {
			return t
		}
	}
	if t, ok := matchRules(typeRules, rawType); ok {
		return t
	}

	if raw.Amount.IsNegative() {
		return models.TypeWithdrawal
	}
	return models.TypeEarning
}

func matchRules(rules []typeRule, rawType string) (models.TransactionType, bool) {
	if rawType == "" {
		return "", false
	}
	for _, rule := range rules {
		for _, s := range rule.substrings {
			if strings.Contains(rawType, s) {
				return rule.canonical, true
			}
		}
	}
	return "", false
}

// NormalizeStatus folds the status vocabulary into pending/completed. Unknown
// statuses are returned lower-cased and count as not completed.
func NormalizeStatus(raw string) models.TransactionStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := pendingStatuses[s]; ok {
		return models.StatusPending
	}
	if _, ok := completedStatuses[s]; ok {
		return models.StatusCompleted
	}
	return models.TransactionStatus(s)
}

// Filter keeps the transactions matching the non-empty fields of f.
func Filter(txs []models.Transaction, f models.TransactionFilter) []models.Transaction {
	wantType := strings.ToLower(strings.TrimSpace(f.Type))
	wantStatus := NormalizeStatus(f.Status)

	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if wantType != "" && string(tx.Type) != wantType {
			continue
		}
		if f.Status != "" && tx.Status != wantStatus {
			continue
		}
		out = append(out, tx)
	}
	return out
}
