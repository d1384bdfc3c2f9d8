package subscriber

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-wallet-ledger/config"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// DLQPublisher receives messages whose handler kept failing.
type DLQPublisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

type KafkaConsumer struct {
	Readers      []*kafka.Reader
	DLQPublisher DLQPublisher
	RetryConfig  config.RetryConfig
	wg           sync.WaitGroup
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	publisher DLQPublisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]*kafka.Reader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: publisher,
		RetryConfig:  retryConfig,
	}
}

// Listen starts one reader loop per topic. The loops stop when ctx is done.
func (c *KafkaConsumer) Listen(ctx context.Context, handler func(ctx context.Context, topic string, value []byte) error) {
	for _, reader := range c.Readers {
		c.wg.Add(1)
		go func(r *kafka.Reader) {
			defer c.wg.Done()
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil || errors.Is(err, context.Canceled) {
						return
					}
					logrus.Errorf("Kafka error on %s: %v", r.Config().Topic, err)
					continue
				}
				c.processMessage(ctx, msg, handler)
			}
		}(reader)
	}
}

// Close waits for the reader loops and closes the readers.
func (c *KafkaConsumer) Close() error {
	c.wg.Wait()
	var firstErr error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler func(ctx context.Context, topic string, value []byte) error) {
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		err := handler(ctx, msg.Topic, msg.Value)
		if err == nil {
			return
		}

		backoff := c.RetryConfig.Backoff(attempt)
		logrus.Warnf("Handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err, backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return
		}
	}

	logrus.Errorf("Message failed after %d retries: topic=%s, key=%s", c.RetryConfig.MaxAttempts, msg.Topic, string(msg.Key))
	if c.DLQPublisher != nil {
		dlqMessage := models.DLQMessage{
			OriginalTopic: msg.Topic,
			Key:           string(msg.Key),
			Value:         string(msg.Value),
			Timestamp:     time.Now().UTC(),
			Attempts:      c.RetryConfig.MaxAttempts,
		}
		err := c.DLQPublisher.Publish(ctx, models.WalletDLQTopic, string(msg.Key), dlqMessage)
		if err != nil {
			logrus.Errorf("Failed to send message to DLQ: %v", err)
		} else {
			logrus.Infof("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
		}
	}
}
