// Package walletapi is the client of the remote wallet service REST API. It
// forwards the caller's bearer token, bounds every call with a timeout and
// retries idempotent reads.
package walletapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/config"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 10 << 20

type tokenKey struct{}

// WithToken returns a context whose calls carry the given bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

type Client struct {
	BaseURL     string
	HTTP        *http.Client
	RetryConfig config.RetryConfig
}

func New(baseURL string, timeout time.Duration, retryConfig config.RetryConfig) *Client {
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 3
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 200 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 2 * time.Second
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		HTTP:        &http.Client{Timeout: timeout},
		RetryConfig: retryConfig,
	}
}

// GetWallet returns the wallet record of the caller, or nil when the wallet
// service has none yet.
func (c *Client) GetWallet(ctx context.Context) (*models.RawWallet, error) {
	body, err := c.get(ctx, "wallet", "/wallet", nil)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	payload := unwrap(body, "data", "wallet")
	if isNull(payload) {
		return nil, nil
	}

	var wallet models.RawWallet
	if err := json.Unmarshal(payload, &wallet); err != nil {
		return nil, &RemoteFetchError{Resource: "wallet", Err: fmt.Errorf("malformed wallet: %w", err)}
	}
	return &wallet, nil
}

// ListTransactions returns the caller's raw transactions. Both a flat array
// and a paginated envelope are accepted.
func (c *Client) ListTransactions(ctx context.Context) ([]models.RawTransaction, error) {
	body, err := c.get(ctx, "transactions", "/wallet/transactions", nil)
	if errors.Is(err, ErrNotFound) {
		return []models.RawTransaction{}, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeTransactions("transactions", body)
}

func (c *Client) Deposit(ctx context.Context, req models.DepositRequest) (*models.RawTransaction, error) {
	return c.submit(ctx, "/wallet/deposit", req)
}

func (c *Client) Withdraw(ctx context.Context, req models.WithdrawRequest) (*models.RawTransaction, error) {
	return c.submit(ctx, "/wallet/withdraw", req)
}

func (c *Client) GetRevenue(ctx context.Context) (*models.RawRevenue, error) {
	body, err := c.get(ctx, "revenue", "/admin/revenue", nil)
	if err != nil {
		return nil, err
	}

	var revenue models.RawRevenue
	if err := json.Unmarshal(unwrap(body, "data"), &revenue); err != nil {
		return nil, &RemoteFetchError{Resource: "revenue", Err: fmt.Errorf("malformed revenue: %w", err)}
	}
	return &revenue, nil
}

func (c *Client) ListAdminTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.RawTransaction, error) {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.Type != "" {
		q.Set("type", filter.Type)
	}

	body, err := c.get(ctx, "admin transactions", "/admin/transactions", q)
	if err != nil {
		return nil, err
	}
	return decodeTransactions("admin transactions", body)
}

// GetReports returns the remote report document for a period untouched.
func (c *Client) GetReports(ctx context.Context, period string) (json.RawMessage, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	body, err := c.get(ctx, "reports", "/admin/reports", q)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, &RemoteFetchError{Resource: "reports", Err: errors.New("malformed report")}
	}
	return json.RawMessage(body), nil
}

func (c *Client) get(ctx context.Context, resource, path string, query url.Values) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		body, status, err := c.do(ctx, http.MethodGet, path, query, nil)
		switch {
		case err == nil && status < 300:
			return body, nil
		case err == nil && status == http.StatusNotFound:
			return nil, &RemoteFetchError{Resource: resource, Status: status, Err: ErrNotFound}
		case err == nil && status < 500 && status != http.StatusTooManyRequests:
			return nil, &RemoteFetchError{Resource: resource, Status: status, Err: errors.New(serverMessage(body))}
		case err == nil:
			lastErr = &RemoteFetchError{Resource: resource, Status: status, Err: errors.New(serverMessage(body))}
		default:
			if ctx.Err() != nil {
				return nil, &RemoteFetchError{Resource: resource, Err: ctx.Err()}
			}
			lastErr = &RemoteFetchError{Resource: resource, Err: err}
		}

		if attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := c.RetryConfig.Backoff(attempt)
		logrus.WithFields(logrus.Fields{
			"resource": resource,
			"attempt":  attempt + 1,
			"delay":    delay.String(),
		}).Warnf("Retrying wallet service read: %v", lastErr)

		select {
		case <-time.After(delay):
			continue
		case <-ctx.Done():
			return nil, &RemoteFetchError{Resource: resource, Err: ctx.Err()}
		}
	}

	return nil, lastErr
}

// submit posts once. Deposits and withdrawals are not idempotent, so a
// failure is reported to the user instead of retried.
func (c *Client) submit(ctx context.Context, path string, payload interface{}) (*models.RawTransaction, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}

	body, status, err := c.do(ctx, http.MethodPost, path, nil, data)
	if err != nil {
		return nil, &RemoteSubmissionError{Err: err}
	}
	if status >= 300 {
		msg := serverMessage(body)
		if msg == http.StatusText(status) {
			msg = ""
		}
		return nil, &RemoteSubmissionError{Status: status, Message: msg, Err: fmt.Errorf("status %d", status)}
	}

	var tx models.RawTransaction
	payloadBody := unwrap(body, "data", "transaction")
	if len(bytes.TrimSpace(payloadBody)) > 0 {
		if err := json.Unmarshal(payloadBody, &tx); err != nil {
			logrus.Warnf("Unreadable transaction in submission response: %s", err.Error())
		}
	}
	return &tx, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, int, error) {
	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return data, resp.StatusCode, nil
}

func decodeTransactions(resource string, body []byte) ([]models.RawTransaction, error) {
	payload := unwrap(body, "data", "transactions", "items", "results")
	if isNull(payload) {
		return []models.RawTransaction{}, nil
	}

	var txs []models.RawTransaction
	if err := json.Unmarshal(payload, &txs); err != nil {
		return nil, &RemoteFetchError{Resource: resource, Err: fmt.Errorf("malformed transaction list: %w", err)}
	}
	if txs == nil {
		txs = []models.RawTransaction{}
	}
	return txs, nil
}

// unwrap descends into the first present envelope key, up to two levels, so
// {"data": {"items": [...]}} and [...] decode the same way.
func unwrap(body []byte, keys ...string) json.RawMessage {
	current := json.RawMessage(bytes.TrimSpace(body))
	for depth := 0; depth < 2; depth++ {
		if len(current) == 0 || current[0] != '{' {
			return current
		}
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(current, &envelope); err != nil {
			return current
		}
		found := false
		for _, k := range keys {
			if v, ok := envelope[k]; ok && !isNull(v) {
				current = json.RawMessage(bytes.TrimSpace(v))
				found = true
				break
			}
		}
		if !found {
			return current
		}
	}
	return current
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// serverMessage extracts a human readable message from an error body.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, m := range []string{payload.Message, payload.Error, payload.Detail} {
			if strings.TrimSpace(m) != "" {
				return strings.TrimSpace(m)
			}
		}
	}
	return ""
}
