package config_test

import (
	"testing"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/config"
	"github.com/stretchr/testify/assert"
)

func TestBackoff_ExponentialAndCapped(t *testing.T) {
	r := config.RetryConfig{MaxAttempts: 5, BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second}

	assert.Equal(t, 100*time.Millisecond, r.Backoff(0))
	assert.Equal(t, 200*time.Millisecond, r.Backoff(1))
	assert.Equal(t, 800*time.Millisecond, r.Backoff(3))
	assert.Equal(t, time.Second, r.Backoff(4))
}

func TestBackoff_JitterWithinBounds(t *testing.T) {
	r := config.RetryConfig{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second, Jitter: true}

	for i := 0; i < 50; i++ {
		d := r.Backoff(2)
		assert.GreaterOrEqual(t, d, 340*time.Millisecond)
		assert.LessOrEqual(t, d, 460*time.Millisecond)
	}
}

func TestKafkaLists(t *testing.T) {
	k := config.Kafka{
		Brokers:          " kafka-1:9092, ,kafka-2:9092 ",
		SubscriberTopics: "wallet.transactions.recorded",
		PublishTopics:    "",
	}

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, k.BrokerList())
	assert.Equal(t, []string{"wallet.transactions.recorded"}, k.SubscriberTopicList())
	assert.Empty(t, k.PublishTopicList())
}

func TestReportLocation(t *testing.T) {
	assert.Equal(t, time.UTC, config.Report{Timezone: "Mars/Olympus"}.Location())
	assert.Equal(t, "America/Bogota", config.Report{Timezone: "America/Bogota"}.Location().String())
}
