package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"ledger/internal/entities"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	defaultAuthMaxClockSkew = 5 * time.Minute
	defaultOutboxBatchSize  = 100
	maxOutboxBatchSize      = 1000 // не больше страницы журнала
	maxPostgresConns        = 1000
)

type (
	Tasks struct {
		OutboxRelayInterval   time.Duration
		OutboxBatchSize       int
		JournalVerifySchedule string // cron, пусто = проверка выключена
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		AuthMaxClockSkew time.Duration // допустимое расхождение X-Ledger-Timestamp
		PprofEnabled     bool
		PprofPort        string
	}

	Ledger struct {
		Registrar     string
		StorageDriver string
	}

	Log struct {
		Level string
		File  string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int32 // 0 = значение по умолчанию пула
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		LedgerEvent LedgerEvent
	}

	LedgerEvent struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Ledger   Ledger
		Log      Log
		Database Database
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// Enabled ретрансляция и аудит работают только при заданных брокерах.
func (k *Kafka) Enabled() bool {
	return k.Brokers != ""
}

func (k *Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	res := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			res = append(res, b)
		}
	}
	return res
}

func loadFromEnv() (*Config, error) {
	relayInterval, err := osGetEnvDuration("BACKGROUND_OUTBOX_RELAY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	batchSize, err := osGetInt("OUTBOX_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if batchSize == 0 {
		batchSize = defaultOutboxBatchSize
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	ledgerEventTimeout, err := osGetEnvDuration("KAFKA_HANDLER_LEDGER_EVENT_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	clockSkew, err := osGetEnvDuration("AUTH_MAX_CLOCK_SKEW")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if clockSkew == 0 {
		clockSkew = defaultAuthMaxClockSkew
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if maxConns < 0 || maxConns > maxPostgresConns {
		return nil, fmt.Errorf("POSTGRES_MAX_CONNS must be in 0..%d", maxPostgresConns)
	}

	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = StorageDriverPostgres
	}

	return &Config{
		Tasks: Tasks{
			OutboxRelayInterval:   relayInterval,
			OutboxBatchSize:       batchSize,
			JournalVerifySchedule: os.Getenv("JOURNAL_VERIFY_SCHEDULE"),
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			AuthMaxClockSkew: clockSkew,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Ledger: Ledger{
			Registrar:     os.Getenv("REGISTRAR_ADDRESS"),
			StorageDriver: driver,
		},
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
			File:  os.Getenv("LOG_FILE"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			MaxConns: int32(maxConns), //nolint:gosec // проверено выше
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				LedgerEvent: LedgerEvent{
					ProcessTimeout: ledgerEventTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.AuthMaxClockSkew < 0 {
		return errors.New("AUTH_MAX_CLOCK_SKEW must not be negative")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	registrar, err := entities.ParseAddress(cfg.Ledger.Registrar)
	if err != nil {
		return fmt.Errorf("REGISTRAR_ADDRESS: %w", err)
	}
	if registrar.IsNull() {
		return errors.New("REGISTRAR_ADDRESS is required")
	}
	cfg.Ledger.Registrar = registrar.String()

	switch cfg.Ledger.StorageDriver {
	case StorageDriverPostgres:
		if err := validateDatabase(&cfg.Database); err != nil {
			return err
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER %q is not supported", cfg.Ledger.StorageDriver)
	}

	if cfg.Tasks.OutboxBatchSize < 0 || cfg.Tasks.OutboxBatchSize > maxOutboxBatchSize {
		return fmt.Errorf("OUTBOX_BATCH_SIZE must be in 1..%d", maxOutboxBatchSize)
	}
	if cfg.Tasks.JournalVerifySchedule != "" {
		if _, err := cron.ParseStandard(cfg.Tasks.JournalVerifySchedule); err != nil {
			return fmt.Errorf("JOURNAL_VERIFY_SCHEDULE: %w", err)
		}
	}

	if cfg.Kafka.Enabled() {
		if err := validateKafka(cfg); err != nil {
			return err
		}
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateKafka(cfg *Config) error {
	if len(cfg.Kafka.BrokerList()) == 0 {
		return errors.New("KAFKA_BROKERS has no brokers")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Tasks.OutboxRelayInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OUTBOX_RELAY_INTERVAL is required")
	}
	return nil
}

// ValidateWorker требования процесса аудита поверх общих.
func (c *Config) ValidateWorker() error {
	if c.Ledger.StorageDriver != StorageDriverPostgres {
		return errors.New("audit worker requires STORAGE_DRIVER=postgres")
	}
	if !c.Kafka.Enabled() {
		return errors.New("KAFKA_BROKERS is required")
	}
	if c.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if c.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if c.Kafka.Handlers.LedgerEvent.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_LEDGER_EVENT_PROCESS_TIMEOUT is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
