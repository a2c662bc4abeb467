package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"ledger/internal/pkg/config"
	"ledger/internal/pkg/migrate"
	"ledger/internal/pkg/postgres"
	"ledger/pkg/logger"
	"ledger/pkg/querier"
	"ledger/pkg/tx"
)

// WriteLockKey ключ блокировки записи для тестов, совпадать с сервисным не обязан.
const WriteLockKey int64 = 42

var (
	poolInstance *pgxpool.Pool
	poolOnce     sync.Once
)

func GetPool() *pgxpool.Pool {
	poolOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		connPool, err := postgres.NewConnPool(ctx, logger.Nop{}, cfg)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}

		if err := migrate.Up(ctx, logger.Nop{}, connPool); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		poolInstance = connPool
	})

	return poolInstance
}

func GetQuerier() *querier.Querier {
	return querier.New(GetPool(), pgxv5.DefaultCtxGetter)
}

func GetTxManager() *tx.Manager {
	return tx.New(GetPool(), pgxv5.DefaultCtxGetter, tx.WithWriteLock(WriteLockKey))
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if setupSql == "" {
		GetPool()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE document_access, documents, demurrage, shipments, actors,
			ledger_events, outbox_cursor, audit_checkpoint CASCADE;
	`)
	require.NoError(t, err)
}
