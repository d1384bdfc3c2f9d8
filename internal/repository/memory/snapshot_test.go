package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_AbsentOwner(t *testing.T) {
	store := memory.NewSnapshotStore()

	snap, err := store.Get(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSnapshotStore_StoresCopies(t *testing.T) {
	store := memory.NewSnapshotStore()
	ctx := context.Background()
	p := models.Principal{UserID: "user-1", Role: models.RoleClient}

	snap := models.EmptySnapshot(p, time.Now())
	snap.Transactions = []models.Transaction{{ID: "t1"}}
	require.NoError(t, store.Put(ctx, snap))

	snap.Transactions[0].ID = "changed"

	got, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, "t1", got.Transactions[0].ID)

	got.Transactions[0].ID = "mutated"
	again, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "t1", again.Transactions[0].ID)
}

func TestSnapshotStore_Clear(t *testing.T) {
	store := memory.NewSnapshotStore()
	ctx := context.Background()
	p := models.Principal{UserID: "user-1", Role: models.RoleClient}

	require.NoError(t, store.Put(ctx, models.EmptySnapshot(p, time.Now())))
	require.NoError(t, store.Clear(ctx, "user-1"))

	snap, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSnapshotStore_RefusesEarlierRefresh(t *testing.T) {
	store := memory.NewSnapshotStore()
	ctx := context.Background()
	p := models.Principal{UserID: "user-1", Role: models.RoleClient}
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	later := models.EmptySnapshot(p, now)
	later.RequestedAt = now
	later.Token = 7
	require.NoError(t, store.Put(ctx, later))

	earlier := models.EmptySnapshot(p, now)
	earlier.RequestedAt = now.Add(-time.Second)
	earlier.Token = 1

	assert.ErrorIs(t, store.Put(ctx, earlier), models.ErrSnapshotSuperseded)

	got, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.Token)
}
