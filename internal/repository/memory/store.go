package memory

import (
	"context"
	"maps"
	"sync"

	"ledger/internal/entities"
)

type state struct {
	actors       map[entities.Address]entities.Actor
	shipments    map[int64]entities.Shipment
	documents    map[int64]entities.Document
	demurrage    map[int64]entities.DemurrageRecord
	events       []entities.Event
	outboxCursor int64
	checkpoint   entities.AuditCheckpoint
}

func newState() *state {
	return &state{
		actors:    make(map[entities.Address]entities.Actor),
		shipments: make(map[int64]entities.Shipment),
		documents: make(map[int64]entities.Document),
		demurrage: make(map[int64]entities.DemurrageRecord),
	}
}

// clone копия для транзакции. events разделяет массив с зафиксированным
// состоянием: писатель один и дописывает только за пределы его длины.
func (st *state) clone() *state {
	return &state{
		actors:       maps.Clone(st.actors),
		shipments:    maps.Clone(st.shipments),
		documents:    maps.Clone(st.documents),
		demurrage:    maps.Clone(st.demurrage),
		events:       st.events,
		outboxCursor: st.outboxCursor,
		checkpoint:   st.checkpoint,
	}
}

type txKey struct{}

type tx struct {
	st *state
}

// Store хранилище в памяти с теми же гарантиями, что и Postgres:
// писатель один, транзакция либо фиксируется целиком, либо не оставляет следа.
// Читатели видят только зафиксированное состояние и не ждут писателя.
type Store struct {
	writeMu sync.Mutex

	mu        sync.RWMutex
	committed *state
}

func NewStore() *Store {
	return &Store{
		committed: newState(),
	}
}

// Ping хранилище в памяти всегда доступно, пока жив контекст.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Do реализует TxManager. Вложенный вызов выполняется в уже открытой транзакции.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*tx); ok {
		return fn(ctx)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	work := s.snapshot().clone()
	err := fn(context.WithValue(ctx, txKey{}, &tx{st: work}))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.committed = work
	s.mu.Unlock()
	return nil
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed
}

// read состояние транзакции из ctx или последнее зафиксированное.
func (s *Store) read(ctx context.Context) *state {
	if t, ok := ctx.Value(txKey{}).(*tx); ok {
		return t.st
	}
	return s.snapshot()
}

// write запись вне транзакции выполняется как отдельная транзакция.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if t, ok := ctx.Value(txKey{}).(*tx); ok {
		return fn(t.st)
	}
	return s.Do(ctx, func(ctx context.Context) error {
		return fn(s.read(ctx))
	})
}

func (s *Store) Actors() *Actors {
	return &Actors{store: s}
}

func (s *Store) Shipments() *Shipments {
	return &Shipments{store: s}
}

func (s *Store) Documents() *Documents {
	return &Documents{store: s}
}

func (s *Store) Demurrage() *Demurrage {
	return &Demurrage{store: s}
}

func (s *Store) Events() *Events {
	return &Events{store: s}
}

func (s *Store) Outbox() *Outbox {
	return &Outbox{store: s}
}

func (s *Store) Checkpoints() *Checkpoints {
	return &Checkpoints{store: s}
}
