package kafka

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/IBM/sarama"
	"ledger/pkg/logger"
	retrierconfig "ledger/pkg/retrier"
	"ledger/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

func newRetrier(log logger.Logger, maxElapsed time.Duration, shouldRetry retrierconfig.ShouldRetryFunc, msg string) *backoff_adapter.Retrier {
	return backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsed,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     shouldRetry,
		OnRetry: func(err error, wait time.Duration) {
			log.With(
				logger.NewField("error", err),
				logger.NewField("retry_in", wait.String()),
			).Warn(msg)
		},
	})
}

// pingKafka ждет брокеров и проверяет, что у топика журнала есть
// партиция LedgerPartition.
func pingKafka(ctx context.Context, log logger.Logger, brokers []string, topic string, cfg *sarama.Config) error {
	var attempts int
	err := newRetrier(log, maxElapsedTime, nil, "kafka is not ready").ExecuteWithContext(ctx, func(context.Context) error {
		attempts++

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.With(logger.NewField("error", err)).Error("failed to close Kafka connection")
			}
		}()

		partitions, err := client.Partitions(topic)
		if err != nil {
			return fmt.Errorf("topic %q: %w", topic, err)
		}
		if !slices.Contains(partitions, LedgerPartition) {
			return fmt.Errorf("topic %q has no partition %d", topic, LedgerPartition)
		}
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempts),
		).Error("Kafka connection failed after retries")
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.With(logger.NewField("attempts", attempts)).Info("Kafka connection established")
	return nil
}
