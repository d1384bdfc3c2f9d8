package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/handlers"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/handlers/mocks"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/policy"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/service"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/walletapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var client = models.Principal{UserID: "user-1", Role: models.RoleClient}

func init() {
	gin.SetMode(gin.TestMode)
}

func newWalletRouter(t *testing.T) (*gin.Engine, *mocks.MockWalletService, *mocks.MockSubmissionService) {
	wallets := mocks.NewMockWalletService(t)
	submissions := mocks.NewMockSubmissionService(t)
	h := handlers.NewWalletHandler(wallets, submissions)

	r := gin.New()
	g := r.Group("/wallet", handlers.Principal())
	g.GET("", h.GetWallet)
	g.POST("/refresh", h.Refresh)
	g.GET("/quote", h.Quote)
	g.GET("/draft", h.Draft)
	submit := g.Group("", handlers.RequireRole(models.RoleClient, models.RoleFreelancer))
	submit.POST("/deposit", h.Deposit)
	return r, wallets, submissions
}

func request(method, target, body string, p *models.Principal) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if p != nil {
		req.Header.Set(handlers.HeaderUserID, p.UserID)
		req.Header.Set(handlers.HeaderRole, string(p.Role))
	}
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestPrincipal_MissingIdentity(t *testing.T) {
	r, _, _ := newWalletRouter(t)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, request(http.MethodGet, "/wallet", "", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPrincipal_UnknownRole(t *testing.T) {
	r, _, _ := newWalletRouter(t)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, request(http.MethodGet, "/wallet", "", &models.Principal{UserID: "u", Role: "root"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetWallet_ReturnsSnapshot(t *testing.T) {
	r, wallets, _ := newWalletRouter(t)

	wallets.EXPECT().View(mock.Anything, client).Return(models.EmptySnapshot(client, time.Now()), nil).Once()

	req := request(http.MethodGet, "/wallet", "", &client)
	req.Header.Set("Authorization", "Bearer abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", decodeBody(t, w)["owner_id"])
}

func TestRequireRole_AdminCannotDeposit(t *testing.T) {
	r, _, _ := newWalletRouter(t)
	admin := models.Principal{UserID: "admin-1", Role: models.RoleAdmin}
	w := httptest.NewRecorder()

	r.ServeHTTP(w, request(http.MethodPost, "/wallet/deposit", `{"amount":"100"}`, &admin))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetWallet_RemoteFailure(t *testing.T) {
	r, wallets, _ := newWalletRouter(t)

	wallets.EXPECT().View(mock.Anything, client).
		Return(nil, &walletapi.RemoteFetchError{Resource: "wallet", Err: errors.New("boom")}).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, request(http.MethodGet, "/wallet", "", &client))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "wallet service unavailable", decodeBody(t, w)["error"])
}

func TestRefresh_ReasonFromBody(t *testing.T) {
	r, wallets, _ := newWalletRouter(t)

	wallets.EXPECT().Refresh(mock.Anything, client, service.ReasonVisibility).
		Return(models.EmptySnapshot(client, time.Now()), nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, request(http.MethodPost, "/wallet/refresh", `{"reason":"visibility"}`, &client))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefresh_UnknownReason(t *testing.T) {
	r, _, _ := newWalletRouter(t)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, request(http.MethodPost, "/wallet/refresh", `{"reason":"timer"}`, &client))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeposit_ValidationError(t *testing.T) {
	r, _, submissions := newWalletRouter(t)
	flow := service.NewFlow(models.KindDeposit)
	flow.ErrorCode = "AmountOutOfRange"

	submissions.EXPECT().Submit(mock.Anything, client, mock.MatchedBy(func(d models.RequestDraft) bool {
		return d.Kind == models.KindDeposit && d.Amount.String() == "5"
	})).Return(*flow, &policy.ValidationError{Kind: policy.ErrAmountOutOfRange, Field: "amount", Message: "minimum deposit is 10"}).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, request(http.MethodPost, "/wallet/deposit", `{"amount":"5","method":"paypal"}`, &client))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "AmountOutOfRange", body["code"])
	assert.Equal(t, "amount", body["field"])
	assert.Contains(t, body, "flow")
}

func TestDeposit_InProgress(t *testing.T) {
	r, _, submissions := newWalletRouter(t)

	submissions.EXPECT().Submit(mock.Anything, client, mock.Anything).
		Return(service.Flow{}, service.ErrSubmissionInProgress).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, request(http.MethodPost, "/wallet/deposit", `{"amount":"50"}`, &client))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeposit_RemoteRejection(t *testing.T) {
	r, _, submissions := newWalletRouter(t)

	submissions.EXPECT().Submit(mock.Anything, client, mock.Anything).
		Return(service.Flow{}, &walletapi.RemoteSubmissionError{Status: 400, Message: "card declined"}).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, request(http.MethodPost, "/wallet/deposit", `{"amount":"50"}`, &client))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "card declined", decodeBody(t, w)["error"])
}

func TestDeposit_Created(t *testing.T) {
	r, _, submissions := newWalletRouter(t)
	flow := service.NewFlow(models.KindDeposit)
	flow.State = models.StateCompleted

	submissions.EXPECT().Submit(mock.Anything, client, mock.Anything).Return(*flow, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, request(http.MethodPost, "/wallet/deposit", `{"amount":"50","method":"paypal","paypal_email":"a@b.co"}`, &client))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDeposit_MalformedBody(t *testing.T) {
	r, _, _ := newWalletRouter(t)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, request(http.MethodPost, "/wallet/deposit", `{"amount":`, &client))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuote_InvalidAmount(t *testing.T) {
	r, _, _ := newWalletRouter(t)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, request(http.MethodGet, "/wallet/quote?kind=deposit&amount=abc", "", &client))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDraft_InvalidKind(t *testing.T) {
	r, _, _ := newWalletRouter(t)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, request(http.MethodGet, "/wallet/draft?kind=transfer", "", &client))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
