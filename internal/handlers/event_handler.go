package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/sirupsen/logrus"
)

// SnapshotInvalidator drops the cached wallet view of an owner.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context, ownerID string) error
}

// EventHandler processes Kafka events that change a wallet outside this service.
type EventHandler struct {
	Wallets SnapshotInvalidator
}

func NewEventHandler(w SnapshotInvalidator) *EventHandler {
	return &EventHandler{Wallets: w}
}

// HandleEvents clears the owner's snapshot when the wallet service records a
// transaction, so the next read fetches the settled state.
func (h *EventHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.TransactionRecordedEventTopic:
		var event models.TransactionRecordedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing TransactionRecordedEvent %s", err.Error())
			return fmt.Errorf("error parsing TransactionRecordedEvent %w", err)
		}
		if event.OwnerID == "" {
			logrus.Warnf("TransactionRecordedEvent %s without owner, ignoring", event.TransactionID)
			return nil
		}

		if err := h.Wallets.Invalidate(ctx, event.OwnerID); err != nil {
			return fmt.Errorf("error invalidating snapshot %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"owner_id":       event.OwnerID,
			"transaction_id": event.TransactionID,
		}).Info("TransactionRecordedEvent handled successfully")
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}

	return nil
}
