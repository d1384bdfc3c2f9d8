package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawTransaction_AlternateFieldNames(t *testing.T) {
	var tx models.RawTransaction
	err := json.Unmarshal([]byte(`{
		"transaction_id": 42,
		"transaction_type": "payment_received",
		"amount": "1,250.50",
		"status": "COMPLETED",
		"note": "logo work",
		"projectId": 7,
		"user_name": "ana",
		"metadata": {"method": "paypal"},
		"createdAt": "2026-03-01 10:00:00"
	}`), &tx)

	require.NoError(t, err)
	assert.Equal(t, "42", tx.ID)
	assert.Equal(t, "payment_received", tx.Type)
	assert.Equal(t, "1250.5", tx.Amount.String())
	assert.Equal(t, "logo work", tx.Description)
	assert.Equal(t, "7", tx.ProjectID)
	assert.Equal(t, "ana", tx.UserName)
	assert.JSONEq(t, `{"method":"paypal"}`, string(tx.Details))
	assert.Equal(t, time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC), tx.CreatedAt)
}

func TestRawTransaction_PrimaryFieldsWin(t *testing.T) {
	var tx models.RawTransaction
	err := json.Unmarshal([]byte(`{"id":"a","transaction_id":"b","type":"deposit","transaction_type":"x","amount":10}`), &tx)

	require.NoError(t, err)
	assert.Equal(t, "a", tx.ID)
	assert.Equal(t, "deposit", tx.Type)
	assert.Equal(t, "10", tx.Amount.String())
	assert.True(t, tx.CreatedAt.IsZero())
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, "12.5", models.ParseAmount(json.RawMessage(`"12.50"`)).String())
	assert.Equal(t, "-3", models.ParseAmount(json.RawMessage(`-3`)).String())
	assert.True(t, models.ParseAmount(json.RawMessage(`"abc"`)).IsZero())
	assert.True(t, models.ParseAmount(json.RawMessage(`null`)).IsZero())
	assert.True(t, models.ParseAmount(json.RawMessage(`{"v":1}`)).IsZero())
}

func TestParseTimestamp(t *testing.T) {
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), models.ParseTimestamp("2026-03-01"))
	assert.Equal(t, 2026, models.ParseTimestamp("2026-03-01T10:00:00.123Z").Year())
	assert.True(t, models.ParseTimestamp("yesterday").IsZero())
	assert.True(t, models.ParseTimestamp("").IsZero())
}
