package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/ledger"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/metrics"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/revenue"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RefreshReason names the event that asked for a wallet refresh.
type RefreshReason string

const (
	ReasonMount      RefreshReason = "mount"
	ReasonFocus      RefreshReason = "focus"
	ReasonVisibility RefreshReason = "visibility"
	ReasonNavigation RefreshReason = "navigation"
	ReasonSubmission RefreshReason = "submission"
	ReasonSettlement RefreshReason = "settlement"
)

func ParseRefreshReason(s string) (RefreshReason, error) {
	r := RefreshReason(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case "":
		return ReasonFocus, nil
	case ReasonMount, ReasonFocus, ReasonVisibility, ReasonNavigation, ReasonSubmission, ReasonSettlement:
		return r, nil
	default:
		return "", fmt.Errorf("unknown refresh reason %q", s)
	}
}

// WalletService owns the wallet view of each user: the balance and the
// canonical transaction list, always taken from the same refresh.
//
// Every refresh takes a new request token for its owner. Only the result of
// the latest token is applied, so a slow response can never overwrite the
// result of a refresh that started after it.
type WalletService struct {
	API       WalletAPI
	Snapshots SnapshotRepo
	MaxAge    time.Duration
	Now       func() time.Time
	// Location is the calendar the monthly trend is bucketed in.
	Location  *time.Location

	mu     sync.Mutex
	tokens map[string]uint64
}

// NewWalletService creates a WalletService. Snapshots older than maxAge are
// refreshed on read; a zero maxAge refreshes on every read.
func NewWalletService(api WalletAPI, snapshots SnapshotRepo, maxAge time.Duration) *WalletService {
	return &WalletService{
		API:       api,
		Snapshots: snapshots,
		MaxAge:    maxAge,
		Now:       time.Now,
		Location:  time.UTC,
		tokens:    make(map[string]uint64),
	}
}

// View returns the current snapshot, refreshing it first when there is none
// or it is older than MaxAge.
func (s *WalletService) View(ctx context.Context, p models.Principal) (*models.WalletSnapshot, error) {
	snap, err := s.Snapshots.Get(ctx, p.UserID)
	if err != nil {
		logrus.Warnf("Error reading snapshot for %s: %s", p.UserID, err.Error())
		snap = nil
	}

	if snap != nil && s.fresh(snap) {
		return snap, nil
	}

	reason := ReasonMount
	if snap != nil {
		reason = ReasonNavigation
	}
	return s.Refresh(ctx, p, reason)
}

// Refresh re-fetches the wallet record and the transaction list concurrently
// and applies both together. When either fetch fails nothing is applied and
// the previous snapshot, or the empty snapshot, is returned flagged Degraded.
func (s *WalletService) Refresh(ctx context.Context, p models.Principal, reason RefreshReason) (*models.WalletSnapshot, error) {
	token := s.issueToken(p.UserID)
	requested := s.Now()

	var (
		remote *models.RawWallet
		raws   []models.RawTransaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		defer func() { metrics.RemoteFetchDuration.WithLabelValues("wallet").Observe(time.Since(start).Seconds()) }()
		w, err := s.API.GetWallet(gctx)
		if err != nil {
			return err
		}
		remote = w
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		defer func() { metrics.RemoteFetchDuration.WithLabelValues("transactions").Observe(time.Since(start).Seconds()) }()
		txs, err := s.API.ListTransactions(gctx)
		if err != nil {
			return err
		}
		raws = txs
		return nil
	})

	if err := g.Wait(); err != nil {
		metrics.RefreshesTotal.WithLabelValues(string(reason), "failed").Inc()
		logrus.WithFields(logrus.Fields{
			"owner_id": p.UserID,
			"reason":   reason,
		}).Errorf("Error refreshing wallet: %s", err.Error())
		return s.fallback(ctx, p), nil
	}

	txs := ledger.NewNormalizer(p.Role).NormalizeAll(raws)
	snap := &models.WalletSnapshot{
		OwnerID:      p.UserID,
		Role:         p.Role,
		Balance:      ledger.Resolve(p.Role, remote, txs),
		Transactions: txs,
		FetchedAt:    s.Now(),
		RequestedAt:  requested,
		Token:        token,
	}

	applied, err := s.apply(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("error storing snapshot: %w", err)
	}
	if !applied {
		metrics.StaleRefreshesTotal.Inc()
		metrics.RefreshesTotal.WithLabelValues(string(reason), "stale").Inc()
		logrus.WithFields(logrus.Fields{
			"owner_id": p.UserID,
			"token":    token,
		}).Debug("Discarding stale wallet refresh")

		if current, err := s.Snapshots.Get(ctx, p.UserID); err == nil && current != nil {
			return current, nil
		}
		return snap, nil
	}

	metrics.RefreshesTotal.WithLabelValues(string(reason), "applied").Inc()
	return snap, nil
}

// Invalidate drops the owner's snapshot and makes any refresh already in
// flight stale, so the next read fetches again.
func (s *WalletService) Invalidate(ctx context.Context, ownerID string) error {
	s.issueToken(ownerID)
	if err := s.Snapshots.Clear(ctx, ownerID); err != nil {
		return fmt.Errorf("error clearing snapshot for %s: %w", ownerID, err)
	}
	return nil
}

// Transactions returns the canonical list of the acting user, filtered.
func (s *WalletService) Transactions(ctx context.Context, p models.Principal, filter models.TransactionFilter) ([]models.Transaction, error) {
	snap, err := s.View(ctx, p)
	if err != nil {
		return nil, err
	}
	return ledger.Filter(snap.Transactions, filter), nil
}

// Trend returns the six month earnings chart of the acting user.
func (s *WalletService) Trend(ctx context.Context, p models.Principal) (revenue.Trend, error) {
	snap, err := s.View(ctx, p)
	if err != nil {
		return revenue.Trend{}, err
	}
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	return revenue.MonthlyTrend(snap.Transactions, s.Now().In(loc)), nil
}

func (s *WalletService) fresh(snap *models.WalletSnapshot) bool {
	return s.MaxAge > 0 && s.Now().Sub(snap.FetchedAt) < s.MaxAge
}

func (s *WalletService) issueToken(ownerID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[ownerID]++
	return s.tokens[ownerID]
}

// apply stores snap only if its token is still the latest for the owner. The
// check and the write happen under the same lock. A store shared with other
// replicas may still refuse the write when it holds a later refresh.
func (s *WalletService) apply(ctx context.Context, snap *models.WalletSnapshot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokens[snap.OwnerID] != snap.Token {
		return false, nil
	}
	err := s.Snapshots.Put(ctx, snap)
	if errors.Is(err, models.ErrSnapshotSuperseded) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *WalletService) fallback(ctx context.Context, p models.Principal) *models.WalletSnapshot {
	prior, err := s.Snapshots.Get(ctx, p.UserID)
	if err != nil || prior == nil {
		prior = models.EmptySnapshot(p, s.Now())
	}
	prior.Degraded = true
	return prior
}
