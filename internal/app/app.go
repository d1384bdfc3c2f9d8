package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-wallet-ledger/config"
	handlers "github.com/jeffleon2/draftea-wallet-ledger/internal/handlers"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/metrics"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/publisher"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/repository/memory"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/repository/redisstore"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/service"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/subscriber"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/walletapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	publisher *publisher.KafkaPublisher
	consumer  *subscriber.KafkaConsumer
	redis     *redis.Client
}

func (a *App) Initialize(ctx context.Context, cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.SubmissionRecord{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	metrics.RegisterMetrics()

	submissionRepo := posgrest.New[models.SubmissionRecord](db)
	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), cfg.Kafka.PublishTopicList(), cfg.Kafka.GetRetryConfig())
	client := walletapi.New(cfg.WalletAPI.BaseURL, cfg.WalletAPI.Timeout, cfg.WalletAPI.GetRetryConfig())

	walletService := service.NewWalletService(client, a.snapshotRepo(ctx), cfg.APP.SnapshotMaxAge)
	walletService.Location = cfg.Report.Location()
	submissionService := service.NewSubmissionService(client, walletService, submissionRepo, a.publisher)
	revenueService := service.NewRevenueService(client, cfg.Report.Location())

	walletHandler := handlers.NewWalletHandler(walletService, submissionService)
	adminHandler := handlers.NewAdminHandler(revenueService)
	eventHandler := handlers.NewEventHandler(walletService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(walletHandler, adminHandler)

	a.initSubscribers(ctx, eventHandler)
}

// Run serves until ctx is done, then drains in-flight requests and closes
// the Kafka clients.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Wallet ledger listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Error shutting down http server: %v", err)
	}

	a.close()
	return nil
}

func (a *App) snapshotRepo(ctx context.Context) service.SnapshotRepo {
	if a.config.APP.SnapshotBackend != "redis" {
		return memory.NewSnapshotStore()
	}

	a.redis = a.config.Redis.Client()
	if err := a.redis.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("failed to connect to redis: %v", err)
	}
	return redisstore.NewSnapshotStore(a.redis, time.Hour)
}

func (a *App) initSubscribers(ctx context.Context, eventHandler *handlers.EventHandler) {
	brokers := a.config.Kafka.BrokerList()
	topics := a.config.Kafka.SubscriberTopicList()
	groupID := a.config.Kafka.LedgerGroup

	a.consumer = subscriber.NewMultiTopicConsumer(brokers, topics, groupID, a.publisher, a.config.Kafka.GetRetryConfig())

	a.consumer.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		logrus.Debugf("Received message topic=%s value=%s", topic, string(value))
		return eventHandler.HandleEvents(ctx, topic, value)
	})
}

func (a *App) close() {
	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			logrus.Errorf("Error closing consumer: %v", err)
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logrus.Errorf("Error closing publisher: %v", err)
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logrus.Errorf("Error closing redis: %v", err)
		}
	}
}
