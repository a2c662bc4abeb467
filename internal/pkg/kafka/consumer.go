package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"ledger/internal/pkg/config"
	"ledger/pkg/logger"
)

type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{rebalanceStrategy}

	return cfg, nil
}

// NewConsumer consumer group аудита. Журнал лежит в одной партиции,
// поэтому offsets читаются с самого старого: аудит проходит цепочку с начала.
func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategySticky(),
	)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := cfg.BrokerList()
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topic", cfg.Topic),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, cfg.Topic, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  []string{cfg.Topic},
		handler: handler,
	}, nil
}

// Start блокирует до отмены ctx. Consume возвращается на каждом
// ребалансе, ошибки сессии повторяются с паузой без ограничения по времени.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("Kafka consumer starting")

	retrier := newRetrier(c.log, 0, func(err error) bool {
		return !errors.Is(err, sarama.ErrClosedConsumerGroup)
	}, "consumer session failed")
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		for ctx.Err() == nil {
			if err := c.client.Consume(ctx, c.topics, c.handler); err != nil {
				return err
			}
		}
		return nil
	})

	switch {
	case errors.Is(err, sarama.ErrClosedConsumerGroup):
		c.log.Warn("consumer group closed")
		return nil
	case ctx.Err() != nil:
		c.log.Warn("Context cancelled, stopping consumer")
		return ctx.Err()
	case err != nil:
		return fmt.Errorf("consumer error: %w", err)
	}
	return nil
}

func (c *Consumer) Close() error {
	return c.client.Close()
}
