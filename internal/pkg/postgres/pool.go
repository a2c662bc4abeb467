package postgres

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"ledger/internal/pkg/config"
	"ledger/pkg/logger"
	retrierconfig "ledger/pkg/retrier"
	"ledger/pkg/retrier/backoff_adapter"
)

const (
	applicationName = "ledger"

	defaultMaxConns = 10
	minConns        = 2
	maxConnLifetime = time.Hour
	maxConnIdleTime = 5 * time.Minute

	initialInterval = 2 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewConnPool пул соединений к базе журнала. Ждет доступности базы
// с экспоненциальной паузой, пока не истечет maxElapsedTime.
func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(newDsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	poolCfg.MaxConns = defaultMaxConns
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MinConns = min(minConns, poolCfg.MaxConns)
	poolCfg.MaxConnLifetime = maxConnLifetime
	poolCfg.MaxConnIdleTime = maxConnIdleTime
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("port", cfg.Port),
		logger.NewField("db", cfg.DBName),
		logger.NewField("max_conns", poolCfg.MaxConns),
	)

	if err := waitForDatabase(ctx, dbLog, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}
	return pool, nil
}

func newDsn(cfg *config.Database) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return dsn.String()
}

func waitForDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	var attempts int
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		OnRetry: func(err error, wait time.Duration) {
			log.With(
				logger.NewField("error", err),
				logger.NewField("attempt", attempts),
				logger.NewField("retry_in", wait.String()),
			).Warn("database is not ready")
		},
	})

	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempts++
		return pool.Ping(ctx)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempts),
		).Error("database is unreachable")
		return fmt.Errorf("ping database: %w", err)
	}

	log.With(logger.NewField("attempts", attempts)).Info("database connection established")
	return nil
}
