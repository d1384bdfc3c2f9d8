package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/revenue"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/service"
)

type RevenueService interface {
	Report(ctx context.Context, period revenue.Period) (models.RevenueReport, error)
	Export(ctx context.Context, w io.Writer, period revenue.Period, format service.ExportFormat) (string, error)
	Transactions(ctx context.Context, filter models.TransactionFilter) (service.AdminTransactions, error)
	Reports(ctx context.Context, period revenue.Period) (json.RawMessage, error)
}

type AdminHandler struct {
	Revenue RevenueService
}

func NewAdminHandler(s RevenueService) *AdminHandler {
	return &AdminHandler{Revenue: s}
}

// GET /admin/revenue
func (h *AdminHandler) GetRevenue(c *gin.Context) {
	period, ok := periodQuery(c)
	if !ok {
		return
	}

	report, err := h.Revenue.Report(c.Request.Context(), period)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /admin/revenue/export
func (h *AdminHandler) ExportRevenue(c *gin.Context) {
	period, ok := periodQuery(c)
	if !ok {
		return
	}
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	name, err := h.Revenue.Export(c.Request.Context(), &buf, period, format)
	if err != nil {
		writeError(c, err, nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// GET /admin/transactions
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	var filter models.TransactionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter"})
		return
	}

	result, err := h.Revenue.Transactions(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /admin/reports
func (h *AdminHandler) GetReports(c *gin.Context) {
	period, ok := periodQuery(c)
	if !ok {
		return
	}

	doc, err := h.Revenue.Reports(c.Request.Context(), period)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.Data(http.StatusOK, "application/json", doc)
}

func periodQuery(c *gin.Context) (revenue.Period, bool) {
	period, err := revenue.ParsePeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return period, true
}
