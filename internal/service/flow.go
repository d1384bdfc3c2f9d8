package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
)

var (
	ErrInvalidTransition    = errors.New("invalid submission state transition")
	ErrSubmissionInProgress = errors.New("a request is already being processed")
)

var transitions = map[models.SubmissionState][]models.SubmissionState{
	models.StateDraft:      {models.StateSubmitted},
	models.StateSubmitted:  {models.StateProcessing, models.StateFailed},
	models.StateProcessing: {models.StateCompleted, models.StateFailed},
	models.StateCompleted:  {models.StateDraft},
	models.StateFailed:     {models.StateDraft},
}

func CanTransition(from, to models.SubmissionState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Flow is the state of one deposit or withdrawal form. The draft is kept
// across a failure so the user can correct and resubmit it.
type Flow struct {
	Kind         models.RequestKind     `json:"kind"`
	State        models.SubmissionState `json:"state"`
	Draft        models.RequestDraft    `json:"draft"`
	Quote        *models.Quote          `json:"quote,omitempty"`
	SubmissionID string                 `json:"submission_id,omitempty"`
	Error        string                 `json:"error,omitempty"`
	ErrorCode    string                 `json:"error_code,omitempty"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func NewFlow(kind models.RequestKind) *Flow {
	return &Flow{Kind: kind, State: models.StateDraft, Draft: models.RequestDraft{Kind: kind}}
}

func (f *Flow) Transition(to models.SubmissionState, at time.Time) error {
	if !CanTransition(f.State, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, f.State, to)
	}
	f.State = to
	f.UpdatedAt = at
	return nil
}

// InFlight reports whether a submission is waiting on the wallet service.
func (f *Flow) InFlight() bool {
	return f.State == models.StateSubmitted || f.State == models.StateProcessing
}

// Reopen moves a finished flow back to Draft and clears the last error. A
// failed flow keeps its draft, a completed one starts from an empty draft.
func (f *Flow) Reopen(at time.Time) error {
	switch f.State {
	case models.StateDraft:
	case models.StateCompleted:
		if err := f.Transition(models.StateDraft, at); err != nil {
			return err
		}
		f.Draft = models.RequestDraft{Kind: f.Kind}
		f.Quote = nil
		f.SubmissionID = ""
	case models.StateFailed:
		if err := f.Transition(models.StateDraft, at); err != nil {
			return err
		}
	default:
		return ErrSubmissionInProgress
	}
	f.Error = ""
	f.ErrorCode = ""
	return nil
}
