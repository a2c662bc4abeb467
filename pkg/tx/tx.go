package tx

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

const advisoryLockQuery = `SELECT pg_advisory_xact_lock($1)`

// Manager инкапсулирует логику управления транзакциями.
// С WithWriteLock каждая транзакция первым делом берет advisory lock,
// так что все пишущие операции выполняются строго по одной.
type Manager struct {
	internal *manager.Manager
	db       pgxv5.Tr
	getter   *pgxv5.CtxGetter
	lockKey  *int64
}

// DB — пул, способный и открывать транзакции, и выполнять запросы вне их.
type DB interface {
	pgxv5.Tr
	pgxv5.Transactional
}

type Option func(*Manager)

func WithWriteLock(key int64) Option {
	return func(m *Manager) {
		m.lockKey = &key
	}
}

func New(db DB, getter *pgxv5.CtxGetter, opts ...Option) *Manager {
	m := &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		db:       db,
		getter:   getter,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, func(ctx context.Context) error {
		if m.lockKey != nil {
			_, err := m.getter.DefaultTrOrDB(ctx, m.db).Exec(ctx, advisoryLockQuery, *m.lockKey)
			if err != nil {
				return fmt.Errorf("acquire write lock: %w", err)
			}
		}
		return fn(ctx)
	})
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, m.isoLevel(), fn)
}

// isoLevel под блокировкой записи нужен ReadCommitted: снимок Serializable
// берется на первом запросе, то есть до получения блокировки, и писатель,
// дождавшийся ее, не увидел бы коммит предыдущего. В ReadCommitted каждый
// запрос после блокировки видит все зафиксированное до нее.
func (m *Manager) isoLevel() pgx.TxIsoLevel {
	if m.lockKey != nil {
		return pgx.ReadCommitted
	}
	return pgx.Serializable
}
