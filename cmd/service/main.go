package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "ledger/internal/app"
	eventGateway "ledger/internal/gateway/kafka/events"
	"ledger/internal/handlers/rest/actor_get"
	"ledger/internal/handlers/rest/actor_post"
	"ledger/internal/handlers/rest/demurrage_get"
	"ledger/internal/handlers/rest/demurrage_paid_post"
	"ledger/internal/handlers/rest/demurrage_post"
	"ledger/internal/handlers/rest/document_access_get"
	"ledger/internal/handlers/rest/document_access_post"
	"ledger/internal/handlers/rest/document_hash_get"
	"ledger/internal/handlers/rest/document_location_get"
	"ledger/internal/handlers/rest/document_post"
	"ledger/internal/handlers/rest/events_get"
	"ledger/internal/handlers/rest/healthcheck_head"
	"ledger/internal/handlers/rest/ping_get"
	"ledger/internal/handlers/rest/registrar_get"
	"ledger/internal/handlers/rest/shipment_details_post"
	"ledger/internal/handlers/rest/shipment_get"
	"ledger/internal/handlers/rest/shipment_next_id_get"
	"ledger/internal/handlers/rest/shipment_post"
	"ledger/internal/handlers/rest/shipment_status_put"
	"ledger/internal/handlers/tasks/journal_verify"
	"ledger/internal/handlers/tasks/outbox_relay"
	"ledger/internal/pkg/config"
	"ledger/internal/pkg/dotenv"
	"ledger/internal/pkg/kafka"
	metrics_system "ledger/internal/pkg/metrics"
	"ledger/internal/pkg/middlewares/auth"
	"ledger/internal/pkg/middlewares/graceful_shutdown"
	"ledger/internal/pkg/middlewares/metrics"
	"ledger/internal/pkg/middlewares/rate_limiter"
	"ledger/internal/pkg/middlewares/timeout"
	"ledger/internal/pkg/migrate"
	"ledger/internal/pkg/postgres"
	"ledger/internal/repository/memory"
	"ledger/pkg/background"
	"ledger/pkg/logger"
	"ledger/pkg/logger/zap_adapter"
	"ledger/pkg/token_bucket"
)

func main() {
	// конфиг нужен раньше логгера: уровень и файл логов берутся из него
	if err := dotenv.Load(os.Args[1:]); err != nil {
		stdlog.Fatalf("failed to load environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting shipment ledger",
		logger.NewField("storage", cfg.Ledger.StorageDriver),
		logger.NewField("registrar", cfg.Ledger.Registrar),
	)

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // наследование от context.Background() здесь часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	businessApp, closeStorage, err := openLedger(ctx, log, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	metrics_system.StartSystemMetricsCollector(ongoingCtx, log)

	// фоновые задачи живут до SIGTERM, а не до конца in-flight запросов
	tasks, closeTasks, err := initTasks(ctx, log, cfg, businessApp)
	if err != nil {
		return err
	}
	defer closeTasks()

	worker, err := background.New(ctx, log, tasks)
	if err != nil {
		return fmt.Errorf("background workers: %w", err)
	}
	// продюсер закрывается только после выхода ретранслятора
	defer func() {
		stop()
		worker.Wait()
	}()

	var verifyWg sync.WaitGroup
	if cfg.Tasks.JournalVerifySchedule != "" {
		verifyTask, err := journal_verify.NewJournalVerify(log, businessApp.ServiceJournal, cfg.Tasks.JournalVerifySchedule)
		if err != nil {
			return fmt.Errorf("journal verify: %w", err)
		}
		verifyWg.Add(1)
		go func() {
			defer verifyWg.Done()
			if err := verifyTask.Start(ctx); err != nil {
				runLog.Error("journal verify stopped", logger.NewField("error", err))
			}
		}()
	}

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, businessApp.Storage),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // при выключенном pprof канал nil и кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	verifyWg.Wait()
	runLog.Info("Server stopped")
	return nil
}

// openLedger поднимает хранилище по STORAGE_DRIVER и собирает сервисы поверх него.
func openLedger(ctx context.Context, log logger.Logger, cfg *config.Config) (*application.Application, func(), error) {
	switch cfg.Ledger.StorageDriver {
	case config.StorageDriverMemory:
		log.Warn("in-memory storage: ledger state is lost on restart")
		app, err := application.InitializeMemoryApplication(ctx, log, memory.NewStore(), cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("business logic: %w", err)
		}
		return app, func() {}, nil

	case config.StorageDriverPostgres:
		pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database: %w", err)
		}

		if err := migrate.Up(ctx, log, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}

		app, err := application.InitializePostgresApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("business logic: %w", err)
		}
		return app, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Ledger.StorageDriver)
	}
}

// initTasks без KAFKA_BROKERS ретрансляция выключена и список задач пуст.
func initTasks(ctx context.Context, log logger.Logger, cfg *config.Config, app *application.Application) ([]background.Task, func(), error) {
	if !cfg.Kafka.Enabled() {
		log.Warn("KAFKA_BROKERS is empty, outbox relay disabled")
		return nil, func() {}, nil
	}

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	closeProducer := func() {
		if err := producer.Close(); err != nil {
			log.With(logger.NewField("error", err)).Error("failed to close kafka producer")
		}
	}

	relay := outbox_relay.NewOutboxRelay(
		log,
		app.ServiceJournal,
		app.OutboxCursor,
		eventGateway.New(producer, cfg.Kafka.Topic),
		cfg.Tasks.OutboxRelayInterval,
		cfg.Tasks.OutboxBatchSize,
	)
	return []background.Task{relay}, closeProducer, nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(log, cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	// лимит считается по вызывающему, поэтому auth идет раньше
	router.Use(auth.Middleware(log, cfg.AuthMaxClockSkew, time.Now, auth.NewReplayCache(cfg.AuthMaxClockSkew)))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewKeyedTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.Storage)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")
	router.Handle("/registrar", registrar_get.New(log, app.ServiceActor)).Methods("GET")

	router.Handle("/actors", actor_post.New(log, app.ServiceActor)).Methods("POST")
	router.Handle("/actors/{address}", actor_get.New(log, app.ServiceActor)).Methods("GET")

	router.Handle("/shipments", shipment_post.New(log, app.ServiceShipment)).Methods("POST")
	router.Handle("/shipments/next-id", shipment_next_id_get.New(log, app.ServiceShipment)).Methods("GET")
	router.Handle("/shipments/{id:[0-9]+}", shipment_get.New(log, app.ServiceShipment)).Methods("GET")
	router.Handle("/shipments/{id:[0-9]+}/details", shipment_details_post.New(log, app.ServiceShipment)).Methods("POST")
	router.Handle("/shipments/{id:[0-9]+}/status", shipment_status_put.New(log, app.ServiceShipment)).Methods("PUT")

	router.Handle("/shipments/{id:[0-9]+}/document", document_post.New(log, app.ServiceDocument)).Methods("POST")
	router.Handle("/shipments/{id:[0-9]+}/document/hash", document_hash_get.New(log, app.ServiceDocument)).Methods("GET")
	router.Handle("/shipments/{id:[0-9]+}/document/location", document_location_get.New(log, app.ServiceDocument)).Methods("GET")
	router.Handle("/shipments/{id:[0-9]+}/document/access", document_access_post.New(log, app.ServiceDocument)).Methods("POST")
	router.Handle("/shipments/{id:[0-9]+}/document/access/{address}", document_access_get.New(log, app.ServiceDocument)).Methods("GET")

	router.Handle("/shipments/{id:[0-9]+}/demurrage", demurrage_post.New(log, app.ServiceDemurrage)).Methods("POST")
	router.Handle("/shipments/{id:[0-9]+}/demurrage", demurrage_get.New(log, app.ServiceDemurrage)).Methods("GET")
	router.Handle("/shipments/{id:[0-9]+}/demurrage/paid", demurrage_paid_post.New(log, app.ServiceDemurrage)).Methods("POST")

	router.Handle("/events", events_get.New(log, app.ServiceJournal)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, storage healthcheck_head.Storage) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, storage)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
