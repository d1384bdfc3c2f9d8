package ledger_test

import (
	"encoding/json"
	"testing"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/ledger"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(rawType, amount, status string) models.RawTransaction {
	return models.RawTransaction{
		ID:     rawType + amount,
		Type:   rawType,
		Amount: decimal.RequireFromString(amount),
		Status: status,
	}
}

func TestNormalize_TypeMapping(t *testing.T) {
	cases := []struct {
		rawType string
		amount  string
		want    models.TransactionType
	}{
		{"withdrawal", "-10", models.TypeWithdrawal},
		{"WITHDRAW_REQUEST", "-10", models.TypeWithdrawal},
		{"withdrawal_fee", "-1", models.TypeWithdrawal},
		{"deposit", "100", models.TypeDeposit},
		{"wallet_topup", "100", models.TypeDeposit},
		{"top_up", "100", models.TypeDeposit},
		{"project_payment", "200", models.TypeEarning},
		{"earning", "200", models.TypeEarning},
		{"other_income", "5", models.TypeEarning},
		{"platform_fee", "-2", models.TypeFee},
		{"commission", "-3", models.TypeCommission},
		{"paypal_payout", "-75", models.TypeWithdrawal},
		{"bonus", "20", models.TypeEarning},
		{"", "-1", models.TypeWithdrawal},
		{"", "0", models.TypeEarning},
	}

	for _, tc := range cases {
		t.Run(tc.rawType+"_"+tc.amount, func(t *testing.T) {
			tx := ledger.Normalize(raw(tc.rawType, tc.amount, "completed"))
			assert.Equal(t, tc.want, tx.Type)
			assert.Equal(t, tc.rawType, tx.RawType)
		})
	}
}

func TestNormalize_ExplicitCategoryWins(t *testing.T) {
	r := raw("manual_adjustment", "-40", "completed")
	r.Category = "Refund"

	tx := ledger.Normalize(r)

	assert.Equal(t, models.TypeRefund, tx.Type)
}

func TestNormalize_UnknownCategoryFallsBackToRules(t *testing.T) {
	r := raw("deposit", "40", "completed")
	r.Category = "marketing"

	assert.Equal(t, models.TypeDeposit, ledger.Normalize(r).Type)
}

func TestNormalizer_ClientVocabulary(t *testing.T) {
	client := ledger.NewNormalizer(models.RoleClient)

	assert.Equal(t, models.TypePayment, client.Type(raw("project_payment", "-200", "completed")))
	assert.Equal(t, models.TypeRefund, client.Type(raw("refund", "50", "completed")))
	assert.Equal(t, models.TypeDeposit, client.Type(raw("deposit", "100", "completed")))

	freelancer := ledger.NewNormalizer(models.RoleFreelancer)
	assert.Equal(t, models.TypeEarning, freelancer.Type(raw("project_payment", "200", "completed")))
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]models.TransactionStatus{
		"pending":     models.StatusPending,
		"Processing":  models.StatusPending,
		"in_progress": models.StatusPending,
		"queued":      models.StatusPending,
		"completed":   models.StatusCompleted,
		"SUCCESS":     models.StatusCompleted,
		"succeeded":   models.StatusCompleted,
		"paid":        models.StatusCompleted,
		"failed":      models.StatusFailed,
		" Reversed ":  models.TransactionStatus("reversed"),
	}

	for in, want := range cases {
		assert.Equal(t, want, ledger.NormalizeStatus(in), in)
	}
}

func TestNormalize_IsPure(t *testing.T) {
	r := raw("paypal_payout", "-75", "processing")
	r.Details = json.RawMessage(`{"method":"paypal"}`)

	first := ledger.Normalize(r)
	second := ledger.Normalize(r)

	assert.Equal(t, first, second)
	assert.Equal(t, models.StatusPending, first.Status)
	assert.Equal(t, "paypal", first.Metadata.Method)
}

func TestNormalizeAll_KeepsOrderAndLength(t *testing.T) {
	raws := []models.RawTransaction{
		raw("deposit", "100", "completed"),
		raw("withdrawal", "-20", "pending"),
		raw("earning", "300", "completed"),
	}

	txs := ledger.NormalizeAll(raws)

	require.Len(t, txs, 3)
	assert.Equal(t, models.TypeDeposit, txs[0].Type)
	assert.Equal(t, models.TypeWithdrawal, txs[1].Type)
	assert.Equal(t, models.TypeEarning, txs[2].Type)
}

func TestFilter(t *testing.T) {
	txs := ledger.NormalizeAll([]models.RawTransaction{
		raw("deposit", "100", "completed"),
		raw("deposit", "50", "pending"),
		raw("withdrawal", "-20", "completed"),
	})

	assert.Len(t, ledger.Filter(txs, models.TransactionFilter{}), 3)
	assert.Len(t, ledger.Filter(txs, models.TransactionFilter{Type: "deposit"}), 2)
	assert.Len(t, ledger.Filter(txs, models.TransactionFilter{Type: "deposit", Status: "success"}), 1)
	assert.Empty(t, ledger.Filter(txs, models.TransactionFilter{Type: "refund"}))
}
