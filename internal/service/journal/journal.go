package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"ledger/internal/entities"
)

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000

	verifyBatchSize = 500
)

// Journal упорядоченный журнал событий с хеш-цепочкой.
// Record вызывается внутри транзакции сервиса под общей блокировкой записи,
// поэтому Last+1 дает плотную последовательность.
type Journal struct {
	repository Repository
}

func New(repository Repository) *Journal {
	return &Journal{
		repository: repository,
	}
}

func (j *Journal) Record(ctx context.Context, draft entities.EventDraft) (*entities.Event, error) {
	payload, err := json.Marshal(draft.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", draft.Type, err)
	}

	last, err := j.repository.Last(ctx)
	if err != nil {
		return nil, fmt.Errorf("read journal head: %w", err)
	}

	event := entities.Event{
		Sequence:   1,
		ID:         uuid.New(),
		Type:       draft.Type,
		ShipmentID: draft.ShipmentID,
		Actor:      draft.Actor,
		Payload:    payload,
		RecordedAt: time.Now().UTC().Truncate(time.Microsecond),
		PrevHash:   GenesisHash,
	}
	if last != nil {
		event.Sequence = last.Sequence + 1
		event.PrevHash = last.Hash
	}

	event.Hash, err = ComputeHash(&event)
	if err != nil {
		return nil, err
	}

	err = j.repository.Append(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("append %s event: %w", draft.Type, err)
	}

	EventsAppendedTotal.WithLabelValues(draft.Type.String()).Inc()
	return &event, nil
}

// List события с Sequence > after. limit=0 означает DefaultPageLimit.
func (j *Journal) List(ctx context.Context, after int64, limit int) ([]entities.Event, error) {
	if after < 0 {
		return nil, ErrInvalidCursor
	}
	if limit < 0 || limit > MaxPageLimit {
		return nil, ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}

	events, err := j.repository.ListAfter(ctx, after, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

type VerifyResult struct {
	Events       int64
	LastSequence int64
	LastHash     []byte
}

// Verify проходит весь журнал с начала и проверяет цепочку.
func (j *Journal) Verify(ctx context.Context) (*VerifyResult, error) {
	result, err := j.verify(ctx)
	if err != nil {
		ChainVerificationsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	ChainVerificationsTotal.WithLabelValues("ok").Inc()
	LastVerifiedSequence.Set(float64(result.LastSequence))
	return result, nil
}

func (j *Journal) verify(ctx context.Context) (*VerifyResult, error) {
	verifier := &Verifier{}
	var count int64

	for {
		batch, err := j.repository.ListAfter(ctx, verifier.LastSequence(), verifyBatchSize)
		if err != nil {
			return nil, fmt.Errorf("read events after %d: %w", verifier.LastSequence(), err)
		}

		for i := range batch {
			if err := verifier.Next(&batch[i]); err != nil {
				return nil, err
			}
			count++
		}

		if len(batch) < verifyBatchSize {
			break
		}
	}

	return &VerifyResult{
		Events:       count,
		LastSequence: verifier.LastSequence(),
		LastHash:     verifier.LastHash(),
	}, nil
}
