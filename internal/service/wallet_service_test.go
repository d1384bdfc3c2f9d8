package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/repository/memory"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/service"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/service/mocks"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/walletapi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow   = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	freelancer = models.Principal{UserID: "user-1", Role: models.RoleFreelancer}
)

func amountPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func rawTx(id, rawType, amount, status string) models.RawTransaction {
	return models.RawTransaction{ID: id, Type: rawType, Amount: decimal.RequireFromString(amount), Status: status, CreatedAt: fixedNow.AddDate(0, 0, -1)}
}

func newWalletService(t *testing.T) (*service.WalletService, *mocks.MockWalletAPI, *memory.SnapshotStore) {
	api := mocks.NewMockWalletAPI(t)
	store := memory.NewSnapshotStore()
	svc := service.NewWalletService(api, store, time.Minute)
	svc.Now = func() time.Time { return fixedNow }
	return svc, api, store
}

func TestView_FirstUseRefreshesAndStores(t *testing.T) {
	svc, api, store := newWalletService(t)
	ctx := context.Background()

	api.EXPECT().GetWallet(mock.Anything).Return(nil, nil).Once()
	api.EXPECT().ListTransactions(mock.Anything).Return([]models.RawTransaction{
		rawTx("1", "earning", "100", "completed"),
		rawTx("2", "earning", "200", "completed"),
		rawTx("3", "deposit", "50", "completed"),
		rawTx("4", "earning", "30", "pending"),
	}, nil).Once()

	snap, err := svc.View(ctx, freelancer)

	require.NoError(t, err)
	assert.False(t, snap.Degraded)
	assert.Len(t, snap.Transactions, 4)
	assert.True(t, snap.Balance.Available.Equal(decimal.NewFromInt(350)))
	assert.True(t, snap.Balance.Pending.Equal(decimal.NewFromInt(30)))
	assert.True(t, snap.Balance.Total.Equal(decimal.NewFromInt(380)))

	stored, err := store.Get(ctx, freelancer.UserID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, snap.Token, stored.Token)
}

func TestView_FreshSnapshotSkipsRemote(t *testing.T) {
	svc, _, store := newWalletService(t)
	ctx := context.Background()

	cached := models.EmptySnapshot(freelancer, fixedNow.Add(-10*time.Second))
	require.NoError(t, store.Put(ctx, cached))

	snap, err := svc.View(ctx, freelancer)

	require.NoError(t, err)
	assert.Equal(t, cached.FetchedAt, snap.FetchedAt)
}

func TestView_StaleSnapshotRefreshes(t *testing.T) {
	svc, api, store := newWalletService(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, models.EmptySnapshot(freelancer, fixedNow.Add(-2*time.Minute))))

	api.EXPECT().GetWallet(mock.Anything).Return(&models.RawWallet{Available: amountPtr("75")}, nil).Once()
	api.EXPECT().ListTransactions(mock.Anything).Return([]models.RawTransaction{}, nil).Once()

	snap, err := svc.View(ctx, freelancer)

	require.NoError(t, err)
	assert.Equal(t, fixedNow, snap.FetchedAt)
	assert.True(t, snap.Balance.Available.Equal(decimal.NewFromInt(75)))
}

func TestRefresh_FailureKeepsPriorSnapshot(t *testing.T) {
	svc, api, store := newWalletService(t)
	ctx := context.Background()

	prior := models.EmptySnapshot(freelancer, fixedNow.Add(-time.Hour))
	prior.Balance.Available = decimal.NewFromInt(120)
	prior.Token = 7
	require.NoError(t, store.Put(ctx, prior))

	api.EXPECT().GetWallet(mock.Anything).Return(&models.RawWallet{Available: amountPtr("1")}, nil).Maybe()
	api.EXPECT().ListTransactions(mock.Anything).Return(nil, &walletapi.RemoteFetchError{Resource: "transactions", Err: errors.New("boom")}).Once()

	snap, err := svc.Refresh(ctx, freelancer, service.ReasonFocus)

	require.NoError(t, err)
	assert.True(t, snap.Degraded)
	assert.True(t, snap.Balance.Available.Equal(decimal.NewFromInt(120)))

	stored, err := store.Get(ctx, freelancer.UserID)
	require.NoError(t, err)
	assert.False(t, stored.Degraded)
	assert.Equal(t, uint64(7), stored.Token)
	assert.True(t, stored.Balance.Available.Equal(decimal.NewFromInt(120)))
}

func TestRefresh_FailureWithoutPriorIsEmptyDegraded(t *testing.T) {
	svc, api, store := newWalletService(t)
	ctx := context.Background()

	api.EXPECT().GetWallet(mock.Anything).Return(nil, &walletapi.RemoteFetchError{Resource: "wallet", Err: errors.New("timeout")}).Once()
	api.EXPECT().ListTransactions(mock.Anything).Return([]models.RawTransaction{}, nil).Maybe()

	snap, err := svc.Refresh(ctx, freelancer, service.ReasonMount)

	require.NoError(t, err)
	assert.True(t, snap.Degraded)
	assert.True(t, snap.Balance.Total.IsZero())
	assert.Empty(t, snap.Transactions)

	stored, err := store.Get(ctx, freelancer.UserID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestRefresh_StaleResponseIsDiscarded(t *testing.T) {
	svc, api, store := newWalletService(t)
	ctx := context.Background()

	var inner *models.WalletSnapshot
	api.EXPECT().GetWallet(mock.Anything).RunAndReturn(func(ctx context.Context) (*models.RawWallet, error) {
		// A newer refresh starts and completes while this one is in flight.
		snap, err := svc.Refresh(context.Background(), freelancer, service.ReasonFocus)
		assert.NoError(t, err)
		inner = snap
		return &models.RawWallet{Available: amountPtr("10")}, nil
	}).Once()
	api.EXPECT().GetWallet(mock.Anything).Return(&models.RawWallet{Available: amountPtr("99")}, nil).Once()
	api.EXPECT().ListTransactions(mock.Anything).Return([]models.RawTransaction{}, nil).Times(2)

	snap, err := svc.Refresh(ctx, freelancer, service.ReasonVisibility)

	require.NoError(t, err)
	require.NotNil(t, inner)
	assert.Equal(t, uint64(2), inner.Token)
	assert.Equal(t, uint64(2), snap.Token)
	assert.True(t, snap.Balance.Available.Equal(decimal.NewFromInt(99)))

	stored, err := store.Get(ctx, freelancer.UserID)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stored.Token)
	assert.True(t, stored.Balance.Available.Equal(decimal.NewFromInt(99)))
}

func TestInvalidate_ClearsAndOutdatesInFlightRefresh(t *testing.T) {
	svc, api, store := newWalletService(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, models.EmptySnapshot(freelancer, fixedNow)))

	api.EXPECT().GetWallet(mock.Anything).RunAndReturn(func(ctx context.Context) (*models.RawWallet, error) {
		assert.NoError(t, svc.Invalidate(context.Background(), freelancer.UserID))
		return nil, nil
	}).Once()
	api.EXPECT().ListTransactions(mock.Anything).Return([]models.RawTransaction{}, nil).Once()

	_, err := svc.Refresh(ctx, freelancer, service.ReasonFocus)
	require.NoError(t, err)

	stored, err := store.Get(ctx, freelancer.UserID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestTransactions_Filtered(t *testing.T) {
	svc, api, _ := newWalletService(t)

	api.EXPECT().GetWallet(mock.Anything).Return(nil, nil).Once()
	api.EXPECT().ListTransactions(mock.Anything).Return([]models.RawTransaction{
		rawTx("1", "deposit", "100", "completed"),
		rawTx("2", "paypal_payout", "-75", "completed"),
	}, nil).Once()

	txs, err := svc.Transactions(context.Background(), freelancer, models.TransactionFilter{Type: "withdrawal"})

	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "2", txs[0].ID)
}

func TestTrend_UsesSnapshotTransactions(t *testing.T) {
	svc, api, _ := newWalletService(t)

	api.EXPECT().GetWallet(mock.Anything).Return(nil, nil).Once()
	api.EXPECT().ListTransactions(mock.Anything).Return([]models.RawTransaction{
		rawTx("1", "earning", "300", "completed"),
	}, nil).Once()

	trend, err := svc.Trend(context.Background(), freelancer)

	require.NoError(t, err)
	require.Len(t, trend.Buckets, 6)
	assert.True(t, trend.Buckets[5].Earnings.Equal(decimal.NewFromInt(300)))
}

func TestTrend_BucketsInConfiguredLocation(t *testing.T) {
	svc, api, _ := newWalletService(t)
	svc.Location = time.FixedZone("COT", -5*60*60)

	tx := rawTx("1", "earning", "120", "completed")
	tx.CreatedAt = time.Date(2026, time.March, 1, 2, 0, 0, 0, time.UTC)

	api.EXPECT().GetWallet(mock.Anything).Return(nil, nil).Once()
	api.EXPECT().ListTransactions(mock.Anything).Return([]models.RawTransaction{tx}, nil).Once()

	trend, err := svc.Trend(context.Background(), freelancer)

	require.NoError(t, err)
	require.Len(t, trend.Buckets, 6)
	assert.Equal(t, "Feb 2026", trend.Buckets[4].MonthLabel)
	assert.True(t, trend.Buckets[4].Earnings.Equal(decimal.NewFromInt(120)))
	assert.True(t, trend.Buckets[5].Earnings.IsZero())
}

func TestRefresh_KeepsLaterSnapshotFromSharedStore(t *testing.T) {
	svc, api, store := newWalletService(t)
	ctx := context.Background()

	other := models.EmptySnapshot(freelancer, fixedNow)
	other.RequestedAt = fixedNow.Add(time.Second)
	other.Balance.Available = decimal.NewFromInt(900)
	require.NoError(t, store.Put(ctx, other))

	api.EXPECT().GetWallet(mock.Anything).Return(nil, nil).Once()
	api.EXPECT().ListTransactions(mock.Anything).Return([]models.RawTransaction{
		rawTx("1", "earning", "10", "completed"),
	}, nil).Once()

	snap, err := svc.Refresh(ctx, freelancer, service.ReasonFocus)

	require.NoError(t, err)
	assert.True(t, snap.Balance.Available.Equal(decimal.NewFromInt(900)))
	assert.Empty(t, snap.Transactions)
}

func TestParseRefreshReason(t *testing.T) {
	r, err := service.ParseRefreshReason("")
	require.NoError(t, err)
	assert.Equal(t, service.ReasonFocus, r)

	r, err = service.ParseRefreshReason("Visibility")
	require.NoError(t, err)
	assert.Equal(t, service.ReasonVisibility, r)

	_, err = service.ParseRefreshReason("poll")
	assert.Error(t, err)
}
