package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"ledger/internal/pkg/config"
	"ledger/pkg/logger"
)

// LedgerPartition все события журнала идут в одну партицию,
// иначе аудит не увидит их в порядке sequence.
const LedgerPartition int32 = 0

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
}

func NewSaramaProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// SyncProducer требует Return.Successes
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Partitioner = sarama.NewManualPartitioner
	// ретраи делает gateway через retrier
	cfg.Producer.Retry.Max = 0
	cfg.Net.MaxOpenRequests = 1

	return cfg, nil
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig, err := NewSaramaProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := cfg.BrokerList()
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, cfg.Topic, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	kafkaLog.Info("Kafka producer ready")
	return &Producer{
		log:      kafkaLog,
		producer: producer,
	}, nil
}

func (p *Producer) SendMessages(msgs []*sarama.ProducerMessage) error {
	return p.producer.SendMessages(msgs)
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
