package memory

import (
	"context"
	"fmt"

	"ledger/internal/entities"
)

type Events struct {
	store *Store
}

func (r *Events) Last(ctx context.Context) (*entities.Event, error) {
	events := r.store.read(ctx).events
	if len(events) == 0 {
		return nil, nil
	}
	last := events[len(events)-1]
	return &last, nil
}

// Append sequence обязан быть следующим после последнего.
func (r *Events) Append(ctx context.Context, e entities.Event) error {
	return r.store.write(ctx, func(st *state) error {
		if e.Sequence != int64(len(st.events))+1 {
			return fmt.Errorf("event sequence %d does not follow %d", e.Sequence, len(st.events))
		}
		st.events = append(st.events, e)
		return nil
	})
}

func (r *Events) ListAfter(ctx context.Context, after int64, limit int) ([]entities.Event, error) {
	events := r.store.read(ctx).events
	if after < 0 {
		after = 0
	}
	if after >= int64(len(events)) {
		return []entities.Event{}, nil
	}

	end := min(after+int64(limit), int64(len(events)))
	res := make([]entities.Event, end-after)
	copy(res, events[after:end])
	return res, nil
}

type Outbox struct {
	store *Store
}

func (r *Outbox) GetCursor(ctx context.Context) (int64, error) {
	return r.store.read(ctx).outboxCursor, nil
}

func (r *Outbox) SaveCursor(ctx context.Context, lastSequence int64) error {
	return r.store.write(ctx, func(st *state) error {
		st.outboxCursor = max(st.outboxCursor, lastSequence)
		return nil
	})
}

type Checkpoints struct {
	store *Store
}

func (r *Checkpoints) Get(ctx context.Context) (*entities.AuditCheckpoint, error) {
	cp := r.store.read(ctx).checkpoint
	return &cp, nil
}

func (r *Checkpoints) Save(ctx context.Context, cp entities.AuditCheckpoint) error {
	return r.store.write(ctx, func(st *state) error {
		st.checkpoint = cp
		return nil
	})
}
