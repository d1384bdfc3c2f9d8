package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeffleon2/draftea-wallet-ledger/config"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/app"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	if os.Getenv("GO_ENV") != "local" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.APP.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	decimal.MarshalJSONWithoutQuotes = true

	myApp := &app.App{}
	myApp.Initialize(ctx, cfg)
	if err := myApp.Run(ctx); err != nil {
		logrus.Fatalf("server error: %v", err)
	}

	logrus.Info("Wallet ledger stopped")
}
