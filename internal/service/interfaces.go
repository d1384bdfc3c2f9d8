package service

import (
	"context"
	"encoding/json"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
)

// WalletAPI is the part of the remote wallet service used on behalf of the
// acting user. The bearer token travels in ctx.
type WalletAPI interface {
	GetWallet(ctx context.Context) (*models.RawWallet, error)
	ListTransactions(ctx context.Context) ([]models.RawTransaction, error)
	Deposit(ctx context.Context, req models.DepositRequest) (*models.RawTransaction, error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (*models.RawTransaction, error)
}

// AdminAPI is the admin surface of the remote wallet service.
type AdminAPI interface {
	GetRevenue(ctx context.Context) (*models.RawRevenue, error)
	ListAdminTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.RawTransaction, error)
	GetReports(ctx context.Context, period string) (json.RawMessage, error)
}

// SnapshotRepo holds the last applied wallet snapshot of each owner.
// Get returns nil, nil when the owner has none.
type SnapshotRepo interface {
	Get(ctx context.Context, ownerID string) (*models.WalletSnapshot, error)
	Put(ctx context.Context, snap *models.WalletSnapshot) error
	Clear(ctx context.Context, ownerID string) error
}

// SubmissionRepo persists the local log of deposit and withdrawal submissions.
type SubmissionRepo interface {
	Create(ctx context.Context, record *models.SubmissionRecord) error
	Update(ctx context.Context, record *models.SubmissionRecord, id string) error
	GetBy(ctx context.Context, key string, value interface{}, limit int) (*[]models.SubmissionRecord, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}
