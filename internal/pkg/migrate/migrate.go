package migrate

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"ledger/migrations"
	"ledger/pkg/logger"
)

// Up накатывает встроенные миграции. goose работает через database/sql,
// поэтому пул оборачивается stdlib.OpenDBFromPool.
func Up(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	// соединения возвращаются в пул сразу после миграций
	db.SetMaxIdleConns(0)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, res := range results {
		log.With(
			logger.NewField("version", res.Source.Version),
			logger.NewField("duration", res.Duration.String()),
		).Info("migration applied")
	}
	return nil
}
