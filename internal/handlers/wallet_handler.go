package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/revenue"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/service"
	"github.com/shopspring/decimal"
)

type WalletService interface {
	View(ctx context.Context, p models.Principal) (*models.WalletSnapshot, error)
	Refresh(ctx context.Context, p models.Principal, reason service.RefreshReason) (*models.WalletSnapshot, error)
	Transactions(ctx context.Context, p models.Principal, filter models.TransactionFilter) ([]models.Transaction, error)
	Trend(ctx context.Context, p models.Principal) (revenue.Trend, error)
}

type SubmissionService interface {
	Quote(ctx context.Context, p models.Principal, kind models.RequestKind, amount decimal.Decimal) (models.Quote, error)
	Draft(p models.Principal, kind models.RequestKind) service.Flow
	Submit(ctx context.Context, p models.Principal, draft models.RequestDraft) (service.Flow, error)
	History(ctx context.Context, p models.Principal, limit int) ([]models.SubmissionRecord, error)
}

type WalletHandler struct {
	Wallets     WalletService
	Submissions SubmissionService
}

func NewWalletHandler(w WalletService, s SubmissionService) *WalletHandler {
	return &WalletHandler{Wallets: w, Submissions: s}
}

// GET /wallet
func (h *WalletHandler) GetWallet(c *gin.Context) {
	snap, err := h.Wallets.View(c.Request.Context(), principal(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// POST /wallet/refresh
func (h *WalletHandler) Refresh(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	reason, err := service.ParseRefreshReason(req.Reason)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := h.Wallets.Refresh(c.Request.Context(), principal(c), reason)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GET /wallet/transactions
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	var filter models.TransactionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter"})
		return
	}

	txs, err := h.Wallets.Transactions(c.Request.Context(), principal(c), filter)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

// GET /wallet/trend
func (h *WalletHandler) Trend(c *gin.Context) {
	trend, err := h.Wallets.Trend(c.Request.Context(), principal(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"months": trend.Bars(), "max": trend.Max})
}

// GET /wallet/quote
func (h *WalletHandler) Quote(c *gin.Context) {
	kind := models.RequestKind(c.Query("kind"))
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	quote, err := h.Submissions.Quote(c.Request.Context(), principal(c), kind, amount)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// POST /wallet/deposit
func (h *WalletHandler) Deposit(c *gin.Context) {
	h.submit(c, models.KindDeposit)
}

// POST /wallet/withdraw
func (h *WalletHandler) Withdraw(c *gin.Context) {
	h.submit(c, models.KindWithdrawal)
}

func (h *WalletHandler) submit(c *gin.Context, kind models.RequestKind) {
	var draft models.RequestDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	draft.Kind = kind

	flow, err := h.Submissions.Submit(c.Request.Context(), principal(c), draft)
	if err != nil {
		writeError(c, err, gin.H{"flow": flow})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"flow": flow})
}

// GET /wallet/draft
func (h *WalletHandler) Draft(c *gin.Context) {
	kind := models.RequestKind(c.DefaultQuery("kind", string(models.KindDeposit)))
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kind"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flow": h.Submissions.Draft(principal(c), kind)})
}

// GET /wallet/submissions
func (h *WalletHandler) ListSubmissions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	records, err := h.Submissions.History(c.Request.Context(), principal(c), limit)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": records})
}
