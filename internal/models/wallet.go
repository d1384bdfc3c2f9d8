package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
	RoleAdmin      Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleFreelancer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Principal is the acting user as resolved by the gateway.
type Principal struct {
	UserID string
	Role   Role
}

// RawWallet is the wallet record reported by GET /wallet. Clients get a single
// balance figure, freelancers get available/pending/total.
type RawWallet struct {
	Balance   *decimal.Decimal `json:"balance"`
	Available *decimal.Decimal `json:"available"`
	Pending   *decimal.Decimal `json:"pending"`
	Total     *decimal.Decimal `json:"total"`
}

func (w *RawWallet) UnmarshalJSON(data []byte) error {
	var wire struct {
		Balance   json.RawMessage `json:"balance"`
		Available json.RawMessage `json:"available"`
		Pending   json.RawMessage `json:"pending"`
		Total     json.RawMessage `json:"total"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*w = RawWallet{
		Balance:   optionalAmount(wire.Balance),
		Available: optionalAmount(wire.Available),
		Pending:   optionalAmount(wire.Pending),
		Total:     optionalAmount(wire.Total),
	}
	return nil
}

func optionalAmount(raw json.RawMessage) *decimal.Decimal {
	if isEmptyJSON(raw) {
		return nil
	}
	d := ParseAmount(raw)
	return &d
}

// Balance is the derived balance of one wallet.
// For client wallets Available carries the single balance figure and Pending is zero.
type Balance struct {
	Role      Role            `json:"role"`
	Available decimal.Decimal `json:"available"`
	Pending   decimal.Decimal `json:"pending"`
	Total     decimal.Decimal `json:"total"`
}

// Withdrawable is the amount the owner may take out now.
func (b Balance) Withdrawable() decimal.Decimal {
	if b.Available.IsNegative() {
		return decimal.Zero
	}
	return b.Available
}

// WalletSnapshot is the view state held per session: the balance and the
// canonical transaction list from one consistent refresh.
type WalletSnapshot struct {
	OwnerID      string        `json:"owner_id"`
	Role         Role          `json:"role"`
	Balance      Balance       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
	FetchedAt    time.Time     `json:"fetched_at"`
	RequestedAt  time.Time     `json:"requested_at"`
	Token        uint64        `json:"token"`
	Degraded     bool          `json:"degraded"`
}

// ErrSnapshotSuperseded is returned by a snapshot store when the stored
// snapshot comes from a refresh that started later than the one being written.
var ErrSnapshotSuperseded = errors.New("snapshot superseded by a later refresh")

// Supersedes reports whether s may replace stored. Refreshes are ordered by
// the time they started, so this also holds across replicas sharing a store.
func (s *WalletSnapshot) Supersedes(stored *WalletSnapshot) bool {
	return stored == nil || !s.RequestedAt.Before(stored.RequestedAt)
}

// EmptySnapshot is the documented first-use state: zero balance, no transactions.
func EmptySnapshot(p Principal, now time.Time) *WalletSnapshot {
	return &WalletSnapshot{
		OwnerID:      p.UserID,
		Role:         p.Role,
		Balance:      Balance{Role: p.Role, Available: decimal.Zero, Pending: decimal.Zero, Total: decimal.Zero},
		Transactions: []Transaction{},
		FetchedAt:    now,
	}
}
