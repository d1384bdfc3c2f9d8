package app

import (
	"github.com/gin-gonic/gin"
	handlers "github.com/jeffleon2/draftea-wallet-ledger/internal/handlers"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(w *handlers.WalletHandler, admin *handlers.AdminHandler) {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	wallet := a.Router.Group("/wallet", handlers.Principal())
	wallet.GET("", w.GetWallet)
	wallet.POST("/refresh", w.Refresh)
	wallet.GET("/transactions", w.ListTransactions)
	wallet.GET("/trend", w.Trend)
	wallet.GET("/quote", w.Quote)
	wallet.GET("/draft", w.Draft)
	wallet.GET("/submissions", w.ListSubmissions)

	submit := wallet.Group("", handlers.RequireRole(models.RoleClient, models.RoleFreelancer))
	submit.POST("/deposit", w.Deposit)
	submit.POST("/withdraw", w.Withdraw)

	adminGroup := a.Router.Group("/admin", handlers.Principal(), handlers.RequireRole(models.RoleAdmin))
	adminGroup.GET("/revenue", admin.GetRevenue)
	adminGroup.GET("/revenue/export", admin.ExportRevenue)
	adminGroup.GET("/transactions", admin.ListTransactions)
	adminGroup.GET("/reports", admin.GetReports)
}
