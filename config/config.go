package config

import (
	"math"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}

	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Redis
	Kafka
	WalletAPI
	Report
}

type APP struct {
	PORT            string        `env:"APP_PORT" envDefault:"8090"`
	LogLevel        string        `env:"APP_LOG_LEVEL" envDefault:"info"`
	SnapshotBackend string        `env:"SNAPSHOT_BACKEND" envDefault:"memory"`
	SnapshotMaxAge  time.Duration `env:"SNAPSHOT_MAX_AGE" envDefault:"30s"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Kafka struct {
	Brokers          string        `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	LedgerGroup      string        `env:"KAFKA_LEDGER_GROUP_ID" envDefault:"wallet-ledger"`
	SubscriberTopics string        `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"wallet.transactions.recorded"`
	PublishTopics    string        `env:"KAFKA_PUBLISH_TOPICS" envDefault:"wallet.submissions,wallet.dlq"`
	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type WalletAPI struct {
	BaseURL          string        `env:"WALLET_API_BASE_URL" envDefault:"http://localhost:8080/api"`
	Timeout          time.Duration `env:"WALLET_API_TIMEOUT" envDefault:"10s"`
	RetryMaxAttempts int           `env:"WALLET_API_RETRY_MAX_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay   time.Duration `env:"WALLET_API_RETRY_BASE_DELAY" envDefault:"200ms"`
	RetryMaxDelay    time.Duration `env:"WALLET_API_RETRY_MAX_DELAY" envDefault:"2s"`
}

type Report struct {
	Timezone string `env:"REPORT_TIMEZONE" envDefault:"UTC"`
}

// Location falls back to UTC when the configured zone is unknown.
func (r Report) Location() *time.Location {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		logrus.Warnf("Unknown report timezone %q, using UTC", r.Timezone)
		return time.UTC
	}
	return loc
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

// Backoff is the wait before retry attempt+1: exponential on BaseDelay,
// capped at MaxDelay, with +/-15% jitter when enabled.
func (r RetryConfig) Backoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * r.BaseDelay

	if delay > r.MaxDelay {
		delay = r.MaxDelay
	}

	if r.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

func (k Kafka) BrokerList() []string {
	return splitList(k.Brokers)
}

func (k Kafka) SubscriberTopicList() []string {
	return splitList(k.SubscriberTopics)
}

func (k Kafka) PublishTopicList() []string {
	return splitList(k.PublishTopics)
}

func (w WalletAPI) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: w.RetryMaxAttempts,
		BaseDelay:   w.RetryBaseDelay,
		MaxDelay:    w.RetryMaxDelay,
		Jitter:      true,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
