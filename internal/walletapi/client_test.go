package walletapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/config"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/walletapi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}

func newClient(t *testing.T, handler http.HandlerFunc) *walletapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return walletapi.New(srv.URL, time.Second, fastRetry)
}

func TestListTransactions_FlatArray(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallet/transactions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{"id":1,"type":"deposit","amount":"100.50","status":"completed","created_at":"2026-03-01T10:00:00Z"}]`)
	})

	txs, err := client.ListTransactions(walletapi.WithToken(context.Background(), "secret"))

	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "1", txs[0].ID)
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("100.50")))
}

func TestListTransactions_Envelopes(t *testing.T) {
	bodies := []string{
		`{"data":[{"id":"a","amount":1}]}`,
		`{"transactions":[{"id":"a","amount":1}]}`,
		`{"items":[{"id":"a","amount":1}],"total":1}`,
		`{"data":{"items":[{"id":"a","amount":1}]}}`,
	}

	for _, body := range bodies {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		})

		txs, err := client.ListTransactions(context.Background())

		require.NoError(t, err, body)
		require.Len(t, txs, 1, body)
		assert.Equal(t, "a", txs[0].ID)
	}
}

func TestListTransactions_Malformed(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":"oops"}`)
	})

	_, err := client.ListTransactions(context.Background())

	var fetchErr *walletapi.RemoteFetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "transactions", fetchErr.Resource)
}

func TestGetWallet_NotFoundIsAbsent(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	wallet, err := client.GetWallet(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, wallet)
}

func TestGetWallet_DecodesFigures(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"available":"80","pending":20}}`)
	})

	wallet, err := client.GetWallet(context.Background())

	require.NoError(t, err)
	require.NotNil(t, wallet)
	require.NotNil(t, wallet.Available)
	assert.True(t, wallet.Available.Equal(decimal.NewFromInt(80)))
	assert.True(t, wallet.Pending.Equal(decimal.NewFromInt(20)))
	assert.Nil(t, wallet.Balance)
}

func TestGet_RetriesServerErrors(t *testing.T) {
	var calls int32
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	})

	txs, err := client.ListTransactions(context.Background())

	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGet_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls int32
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.GetRevenue(context.Background())

	var fetchErr *walletapi.RemoteFetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.Status)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGet_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.ListAdminTransactions(context.Background(), models.TransactionFilter{})

	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDeposit_SendsBodyOnce(t *testing.T) {
	var calls int32
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wallet/deposit", r.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "paypal", body["method"])
		_, hasCard := body["card"]
		assert.False(t, hasCard)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"transaction":{"id":"tx-9","type":"deposit","amount":100}}`)
	})

	tx, err := client.Deposit(context.Background(), models.DepositRequest{Amount: decimal.NewFromInt(100), Method: models.MethodPaypal})

	require.NoError(t, err)
	assert.Equal(t, "tx-9", tx.ID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestWithdraw_RejectedWithServerMessage(t *testing.T) {
	var calls int32
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"Daily limit reached"}`)
	})

	_, err := client.Withdraw(context.Background(), models.WithdrawRequest{Amount: decimal.NewFromInt(60)})

	var subErr *walletapi.RemoteSubmissionError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, http.StatusBadRequest, subErr.Status)
	assert.Equal(t, "Daily limit reached", subErr.UserMessage())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestWithdraw_ServerErrorWithoutMessage(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Withdraw(context.Background(), models.WithdrawRequest{})

	var subErr *walletapi.RemoteSubmissionError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, "We could not process your request. Please try again.", subErr.UserMessage())
}

func TestListAdminTransactions_ForwardsFilter(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "commission", r.URL.Query().Get("category"))
		assert.Equal(t, "completed", r.URL.Query().Get("status"))
		assert.Empty(t, r.URL.Query().Get("type"))
		_, _ = io.WriteString(w, `{"data":[]}`)
	})

	txs, err := client.ListAdminTransactions(context.Background(), models.TransactionFilter{Category: "commission", Status: "completed"})

	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestGetReports_PassesDocumentThrough(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "week", r.URL.Query().Get("period"))
		_, _ = io.WriteString(w, `{"users":12,"volume":"340.00"}`)
	})

	doc, err := client.GetReports(context.Background(), "week")

	require.NoError(t, err)
	assert.JSONEq(t, `{"users":12,"volume":"340.00"}`, string(doc))
}
