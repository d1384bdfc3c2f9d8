package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/metrics"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/policy"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/walletapi"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const defaultHistoryLimit = 50

// Balances gives the submission flow the current wallet view.
type Balances interface {
	View(ctx context.Context, p models.Principal) (*models.WalletSnapshot, error)
	Refresh(ctx context.Context, p models.Principal, reason RefreshReason) (*models.WalletSnapshot, error)
}

// SubmissionService runs deposits and withdrawals through the
// Draft -> Submitted -> Processing -> Completed/Failed flow.
//
// A draft is validated locally before anything is sent. At most one request
// per owner and kind is in flight; a second submit is rejected with
// ErrSubmissionInProgress. After a completed request the wallet is refreshed
// in full instead of adjusting the balance locally.
type SubmissionService struct {
	API         WalletAPI
	Wallets     Balances
	Submissions SubmissionRepo
	Publisher   Publisher
	Now         func() time.Time

	mu    sync.Mutex
	flows map[string]*Flow
}

func NewSubmissionService(api WalletAPI, wallets Balances, submissions SubmissionRepo, publisher Publisher) *SubmissionService {
	return &SubmissionService{
		API:         api,
		Wallets:     wallets,
		Submissions: submissions,
		Publisher:   publisher,
		Now:         time.Now,
		flows:       make(map[string]*Flow),
	}
}

// Quote returns the fee and limits for an amount without submitting anything.
func (s *SubmissionService) Quote(ctx context.Context, p models.Principal, kind models.RequestKind, amount decimal.Decimal) (models.Quote, error) {
	switch kind {
	case models.KindDeposit:
		return policy.QuoteDeposit(amount)
	case models.KindWithdrawal:
		balance, err := s.balance(ctx, p)
		if err != nil {
			return models.Quote{}, err
		}
		return policy.QuoteWithdrawal(p.Role, amount, balance)
	default:
		return models.Quote{}, &policy.ValidationError{Kind: policy.ErrMissingRequiredField, Field: "kind", Message: "kind is required"}
	}
}

// Draft returns a copy of the flow of the given kind.
func (s *SubmissionService) Draft(p models.Principal, kind models.RequestKind) Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.flowFor(p.UserID, kind)
}

// Submit validates the draft and sends it to the wallet service. The returned
// flow is always the state after the attempt; err says why it did not complete.
func (s *SubmissionService) Submit(ctx context.Context, p models.Principal, draft models.RequestDraft) (Flow, error) {
	draft.Sanitize()
	if !draft.Kind.IsValid() {
		return Flow{}, &policy.ValidationError{Kind: policy.ErrMissingRequiredField, Field: "kind", Message: "kind is required"}
	}

	balance := models.Balance{Role: p.Role}
	if draft.Kind == models.KindWithdrawal {
		b, err := s.balance(ctx, p)
		if err != nil {
			return Flow{}, err
		}
		balance = b
	}

	s.mu.Lock()
	flow := s.flowFor(p.UserID, draft.Kind)
	if err := flow.Reopen(s.Now()); err != nil {
		s.mu.Unlock()
		return Flow{}, err
	}
	flow.Draft = draft.Redacted()

	quote, err := policy.ValidateDraft(p.Role, draft, balance)
	if err != nil {
		var verr *policy.ValidationError
		if errors.As(err, &verr) {
			flow.Error = verr.Message
			flow.ErrorCode = verr.Code()
			metrics.ValidationRejectionsTotal.WithLabelValues(verr.Code()).Inc()
		}
		flow.UpdatedAt = s.Now()
		snapshot := *flow
		s.mu.Unlock()
		return snapshot, err
	}

	_ = flow.Transition(models.StateSubmitted, s.Now())
	flow.Quote = &quote
	flow.SubmissionID = uuid.New().String()
	submissionID := flow.SubmissionID
	s.mu.Unlock()

	record := &models.SubmissionRecord{
		ID:      submissionID,
		OwnerID: p.UserID,
		Role:    p.Role,
		Kind:    draft.Kind,
		Amount:  quote.Amount,
		Fee:     quote.Fee,
		Method:  draft.Method,
		State:   models.StateSubmitted,
	}
	if err := s.Submissions.Create(ctx, record); err != nil {
		logrus.Errorf("Error recording submission %s: %s", submissionID, err.Error())
	}

	s.setState(p.UserID, draft.Kind, models.StateProcessing)

	created, err := s.send(ctx, draft, quote)
	if err != nil {
		return s.fail(ctx, p, draft.Kind, record, err), err
	}

	record.State = models.StateCompleted
	if created != nil {
		record.RemoteTransactionID = created.ID
	}
	s.persist(ctx, record)
	s.publish(ctx, record, "")
	metrics.SubmissionsTotal.WithLabelValues(string(draft.Kind), string(models.StateCompleted)).Inc()
	metrics.SubmissionAmounts.WithLabelValues(string(draft.Kind)).Observe(quote.Amount.InexactFloat64())

	s.mu.Lock()
	flow = s.flowFor(p.UserID, draft.Kind)
	_ = flow.Transition(models.StateCompleted, s.Now())
	result := *flow
	s.mu.Unlock()

	if _, err := s.Wallets.Refresh(ctx, p, ReasonSubmission); err != nil {
		logrus.Warnf("Error refreshing wallet after submission %s: %s", submissionID, err.Error())
	}

	return result, nil
}

// History lists the owner's recorded submissions, newest first.
func (s *SubmissionService) History(ctx context.Context, p models.Principal, limit int) ([]models.SubmissionRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	records, err := s.Submissions.GetBy(ctx, "owner_id = ?", p.UserID, limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		return []models.SubmissionRecord{}, nil
	}
	return *records, nil
}

func (s *SubmissionService) send(ctx context.Context, draft models.RequestDraft, quote models.Quote) (*models.RawTransaction, error) {
	if draft.Kind == models.KindDeposit {
		return s.API.Deposit(ctx, policy.DepositRequest(draft, quote))
	}
	return s.API.Withdraw(ctx, policy.WithdrawRequest(draft, quote))
}

func (s *SubmissionService) fail(ctx context.Context, p models.Principal, kind models.RequestKind, record *models.SubmissionRecord, cause error) Flow {
	message := UserMessage(cause)

	record.State = models.StateFailed
	record.FailureReason = message
	s.persist(ctx, record)
	s.publish(ctx, record, message)
	metrics.SubmissionsTotal.WithLabelValues(string(kind), string(models.StateFailed)).Inc()

	logrus.WithFields(logrus.Fields{
		"submission_id": record.ID,
		"owner_id":      p.UserID,
		"kind":          kind,
	}).Errorf("Submission failed: %s", cause.Error())

	s.mu.Lock()
	defer s.mu.Unlock()
	flow := s.flowFor(p.UserID, kind)
	now := s.Now()
	_ = flow.Transition(models.StateFailed, now)
	// The user corrects and resubmits the same values, so the draft and
	// the error stay on the flow.
	_ = flow.Transition(models.StateDraft, now)
	flow.Error = message
	return *flow
}

func (s *SubmissionService) persist(ctx context.Context, record *models.SubmissionRecord) {
	if err := s.Submissions.Update(ctx, record, record.ID); err != nil {
		logrus.Errorf("Error updating submission %s: %s", record.ID, err.Error())
	}
}

func (s *SubmissionService) publish(ctx context.Context, record *models.SubmissionRecord, reason string) {
	event := models.SubmissionEvent{
		SubmissionID:        record.ID,
		OwnerID:             record.OwnerID,
		Kind:                record.Kind,
		Amount:              record.Amount,
		Method:              record.Method,
		State:               record.State,
		RemoteTransactionID: record.RemoteTransactionID,
		Reason:              reason,
		OccurredAt:          s.Now().UTC(),
	}
	if err := s.Publisher.Publish(ctx, models.SubmissionEventTopic, record.OwnerID, event); err != nil {
		logrus.Errorf("Error publishing submission event %s: %s", record.ID, err.Error())
	}
}

func (s *SubmissionService) setState(ownerID string, kind models.RequestKind, state models.SubmissionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.flowFor(ownerID, kind).Transition(state, s.Now())
}

func (s *SubmissionService) flowFor(ownerID string, kind models.RequestKind) *Flow {
	key := ownerID + "|" + string(kind)
	flow, ok := s.flows[key]
	if !ok {
		flow = NewFlow(kind)
		s.flows[key] = flow
	}
	return flow
}

func (s *SubmissionService) balance(ctx context.Context, p models.Principal) (models.Balance, error) {
	snap, err := s.Wallets.View(ctx, p)
	if err != nil {
		return models.Balance{}, err
	}
	return snap.Balance, nil
}

// UserMessage is the text shown for a failed submission.
func UserMessage(err error) string {
	var serr *walletapi.RemoteSubmissionError
	if errors.As(err, &serr) {
		return serr.UserMessage()
	}
	return (&walletapi.RemoteSubmissionError{}).UserMessage()
}
