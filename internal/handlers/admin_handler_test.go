package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/handlers"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/handlers/mocks"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/revenue"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var admin = models.Principal{UserID: "admin-1", Role: models.RoleAdmin}

func newAdminRouter(t *testing.T) (*gin.Engine, *mocks.MockRevenueService) {
	svc := mocks.NewMockRevenueService(t)
	h := handlers.NewAdminHandler(svc)

	r := gin.New()
	g := r.Group("/admin", handlers.Principal(), handlers.RequireRole(models.RoleAdmin))
	g.GET("/revenue", h.GetRevenue)
	g.GET("/revenue/export", h.ExportRevenue)
	g.GET("/reports", h.GetReports)
	return r, svc
}

func TestAdmin_ForbiddenForClient(t *testing.T) {
	r, _ := newAdminRouter(t)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, request(http.MethodGet, "/admin/revenue", "", &client))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetRevenue_Period(t *testing.T) {
	r, svc := newAdminRouter(t)

	svc.EXPECT().Report(mock.Anything, revenue.PeriodWeek).
		Return(models.RevenueReport{Period: "week", Total: decimal.NewFromInt(19)}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, request(http.MethodGet, "/admin/revenue?period=week", "", &admin))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "week", decodeBody(t, w)["period"])
}

func TestGetRevenue_BadPeriod(t *testing.T) {
	r, _ := newAdminRouter(t)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, request(http.MethodGet, "/admin/revenue?period=year", "", &admin))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportRevenue_XLSXHeaders(t *testing.T) {
	r, svc := newAdminRouter(t)

	svc.EXPECT().Export(mock.Anything, mock.Anything, revenue.PeriodAll, service.FormatXLSX).
		RunAndReturn(func(_ context.Context, w io.Writer, _ revenue.Period, _ service.ExportFormat) (string, error) {
			_, err := w.Write([]byte("PK"))
			return "platform-revenue-2026-03-15.xlsx", err
		}).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, request(http.MethodGet, "/admin/revenue/export?format=xlsx", "", &admin))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.FormatXLSX.ContentType(), w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="platform-revenue-2026-03-15.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", w.Body.String())
}

func TestExportRevenue_UnknownFormat(t *testing.T) {
	r, _ := newAdminRouter(t)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, request(http.MethodGet, "/admin/revenue/export?format=pdf", "", &admin))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReports_PassThrough(t *testing.T) {
	r, svc := newAdminRouter(t)

	svc.EXPECT().Reports(mock.Anything, revenue.PeriodToday).
		Return(json.RawMessage(`{"summary":{"count":3}}`), nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, request(http.MethodGet, "/admin/reports?period=today", "", &admin))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"summary":{"count":3}}`, w.Body.String())
}
