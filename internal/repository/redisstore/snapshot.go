// Package redisstore shares wallet snapshots between replicas through Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix       = "wallet:snapshot:"
	maxWatchRetries = 3
)

type SnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotStore keeps each snapshot for ttl. A zero ttl means one hour.
func NewSnapshotStore(client *redis.Client, ttl time.Duration) *SnapshotStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SnapshotStore{client: client, ttl: ttl}
}

func (s *SnapshotStore) Get(ctx context.Context, ownerID string) (*models.WalletSnapshot, error) {
	data, err := s.client.Get(ctx, keyPrefix+ownerID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot: %w", err)
	}

	var snap models.WalletSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// An unreadable entry is treated as absent and dropped.
		_ = s.client.Del(ctx, keyPrefix+ownerID).Err()
		return nil, nil
	}
	return &snap, nil
}

// Put writes snap unless the stored snapshot comes from a later refresh. The
// read and the write run in one WATCH transaction, so two replicas racing on
// the same owner cannot both win.
func (s *SnapshotStore) Put(ctx context.Context, snap *models.WalletSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("error marshaling snapshot: %w", err)
	}

	key := keyPrefix + snap.OwnerID
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil {
			var stored models.WalletSnapshot
			if json.Unmarshal(current, &stored) == nil && !snap.Supersedes(&stored) {
				return models.ErrSnapshotSuperseded
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, models.ErrSnapshotSuperseded) {
			return fmt.Errorf("error writing snapshot: %w", err)
		}
		return err
	}
	return fmt.Errorf("error writing snapshot: %w", redis.TxFailedErr)
}

func (s *SnapshotStore) Clear(ctx context.Context, ownerID string) error {
	return s.client.Del(ctx, keyPrefix+ownerID).Err()
}
