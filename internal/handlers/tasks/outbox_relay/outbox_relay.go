package outbox_relay

import (
	"context"
	"fmt"
	"time"

	"ledger/pkg/logger"
)

// OutboxRelay переносит события журнала в Kafka после курсора.
// Курсор двигается только после успешной публикации: доставка at-least-once.
type OutboxRelay struct {
	log       logger.Logger
	journal   Journal
	cursor    CursorRepository
	publisher Publisher
	interval  time.Duration
	batchSize int
}

func NewOutboxRelay(
	log logger.Logger,
	journal Journal,
	cursor CursorRepository,
	publisher Publisher,
	interval time.Duration,
	batchSize int,
) *OutboxRelay {
	return &OutboxRelay{
		log:       log,
		journal:   journal,
		cursor:    cursor,
		publisher: publisher,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	after, err := o.cursor.GetCursor(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("get outbox cursor: %w", err)
	}
	OutboxCursor.Set(float64(after))

	var relayed int
	for {
		batch, err := o.journal.List(ctxWithTimeout, after, o.batchSize)
		if err != nil {
			return fmt.Errorf("list events after %d: %w", after, err)
		}
		if len(batch) == 0 {
			break
		}

		if err := o.publisher.Publish(ctxWithTimeout, batch); err != nil {
			return err
		}

		after = batch[len(batch)-1].Sequence
		if err := o.cursor.SaveCursor(ctxWithTimeout, after); err != nil {
			return fmt.Errorf("save outbox cursor %d: %w", after, err)
		}
		OutboxCursor.Set(float64(after))
		relayed += len(batch)

		if len(batch) < o.batchSize {
			break
		}
	}

	if relayed > 0 {
		o.log.With(
			logger.NewField("relayed_events", relayed),
			logger.NewField("cursor", after),
		).Info("outbox relay")
	}
	return nil
}

func (o *OutboxRelay) Name() string {
	return "outbox relay"
}
