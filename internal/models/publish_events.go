package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	SubmissionEventTopic = "wallet.submissions"
	WalletDLQTopic       = "wallet.dlq"
)

type SubmissionEvent struct {
	SubmissionID        string          `json:"submission_id"`
	OwnerID             string          `json:"owner_id"`
	Kind                RequestKind     `json:"kind"`
	Amount              decimal.Decimal `json:"amount"`
	Method              PaymentMethod   `json:"method"`
	State               SubmissionState `json:"state"`
	RemoteTransactionID string          `json:"remote_transaction_id,omitempty"`
	Reason              string          `json:"reason,omitempty"`
	OccurredAt          time.Time       `json:"occurred_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
