package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionRecordedEventTopic = "wallet.transactions.recorded"
)

// TransactionRecordedEvent announces a transaction written server side, for
// example a project settlement, so cached wallet views can be invalidated.
type TransactionRecordedEvent struct {
	TransactionID string          `json:"transaction_id"`
	OwnerID       string          `json:"owner_id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	RecordedAt    time.Time       `json:"recorded_at"`
}
