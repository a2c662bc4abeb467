package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"ledger/internal/entities"
	retrierconfig "ledger/pkg/retrier"
	"ledger/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "kafka"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var retryableCodes = []sarama.KError{
	sarama.ErrNotLeaderForPartition,
	sarama.ErrLeaderNotAvailable,
	sarama.ErrRequestTimedOut,
	sarama.ErrBrokerNotAvailable,
	sarama.ErrNotEnoughReplicas,
	sarama.ErrNotEnoughReplicasAfterAppend,
}

// EventGateway публикует события журнала в топик Kafka.
type EventGateway struct {
	producer producer
	topic    string
	retrier  retrier
}

func New(producer producer, topic string) *EventGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
		OnRetry:         countRetry("SendMessages"),
	}

	return &EventGateway{
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

// Publish отправляет пачку целиком. При ошибке часть сообщений могла
// уйти, повторная отправка дает дубликаты, аудит их отбрасывает.
func (g *EventGateway) Publish(ctx context.Context, events []entities.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs, err := toMessages(g.topic, events)
	if err != nil {
		return fmt.Errorf("gateway events, publish: %w", err)
	}

	err = g.executeWithMetrics(ctx, "SendMessages", func(context.Context) error {
		return g.producer.SendMessages(msgs)
	})
	if err != nil {
		return fmt.Errorf("gateway events, publish %d events after %d: %w",
			len(events), events[0].Sequence-1, err)
	}

	EventsPublishedTotal.Add(float64(len(events)))
	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, sarama.ErrOutOfBrokers) || errors.Is(err, sarama.ErrNotConnected) {
		return true
	}

	var producerErrs sarama.ProducerErrors
	if errors.As(err, &producerErrs) {
		for _, pe := range producerErrs {
			if !isRetryable(pe.Err) {
				return false
			}
		}
		return len(producerErrs) > 0
	}

	var code sarama.KError
	if errors.As(err, &code) {
		for _, c := range retryableCodes {
			if code == c {
				return true
			}
		}
	}
	return false
}

func (g *EventGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	start := time.Now()
	err := g.retrier.ExecuteWithContext(ctx, fn)
	GatewayRequestDuration.WithLabelValues(serviceName, method, getKafkaCode(err)).Observe(time.Since(start).Seconds())
	return err
}

// countRetry повтор считается с кодом ошибки попытки, которую повторяем.
func countRetry(method string) retrierconfig.NotifyFunc {
	return func(err error, _ time.Duration) {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, getKafkaCode(err)).Inc()
	}
}

func getKafkaCode(err error) string {
	if err == nil {
		return "OK"
	}

	var producerErrs sarama.ProducerErrors
	if errors.As(err, &producerErrs) && len(producerErrs) > 0 {
		err = producerErrs[0].Err
	}

	var code sarama.KError
	if errors.As(err, &code) {
		return fmt.Sprintf("%d", int16(code))
	}
	return "UNKNOWN"
}
