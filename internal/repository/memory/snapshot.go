// Package memory keeps wallet snapshots in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
)

type SnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]models.WalletSnapshot
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{snapshots: make(map[string]models.WalletSnapshot)}
}

// Get returns a copy of the stored snapshot, or nil when the owner has none.
func (s *SnapshotStore) Get(_ context.Context, ownerID string) (*models.WalletSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snapshots[ownerID]
	if !ok {
		return nil, nil
	}
	snap.Transactions = append([]models.Transaction(nil), snap.Transactions...)
	return &snap, nil
}

func (s *SnapshotStore) Put(_ context.Context, snap *models.WalletSnapshot) error {
	stored := *snap
	stored.Transactions = append([]models.Transaction(nil), snap.Transactions...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.snapshots[snap.OwnerID]; ok && !snap.Supersedes(&current) {
		return models.ErrSnapshotSuperseded
	}
	s.snapshots[snap.OwnerID] = stored
	return nil
}

func (s *SnapshotStore) Clear(_ context.Context, ownerID string) error {
	s.mu.Lock()
	delete(s.snapshots, ownerID)
	s.mu.Unlock()
	return nil
}
