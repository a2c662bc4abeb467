package journal_verify

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"ledger/pkg/logger"
)

const verifyTimeout = 5 * time.Minute

// JournalVerify по расписанию cron проходит всю цепочку журнала.
type JournalVerify struct {
	log      logger.Logger
	journal  Verifier
	schedule string
}

func NewJournalVerify(log logger.Logger, journal Verifier, schedule string) (*JournalVerify, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("parse verify schedule %q: %w", schedule, err)
	}

	return &JournalVerify{
		log:      log.With(logger.NewField("task", "journal verify")),
		journal:  journal,
		schedule: schedule,
	}, nil
}

func (j *JournalVerify) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	start := time.Now()
	result, err := j.journal.Verify(ctxWithTimeout)
	if err != nil {
		j.log.With(
			logger.NewField("error", err),
		).Error("journal chain verification failed")
		return err
	}

	j.log.With(
		logger.NewField("events", result.Events),
		logger.NewField("last_sequence", result.LastSequence),
		logger.NewField("last_hash", hex.EncodeToString(result.LastHash)),
		logger.NewField("duration", time.Since(start)),
	).Info("journal chain verified")
	return nil
}

// Start блокирует до отмены ctx и дожидается текущей проверки.
func (j *JournalVerify) Start(ctx context.Context) error {
	cronLog := cronLogger{log: j.log}
	c := cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	_, err := c.AddFunc(j.schedule, func() {
		_ = j.Do(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule journal verify: %w", err)
	}

	c.Start()
	j.log.With(logger.NewField("schedule", j.schedule)).Info("journal verify scheduled")

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func (j *JournalVerify) Name() string {
	return "journal verify"
}

// cronLogger cron.Logger поверх нашего логгера.
type cronLogger struct {
	log logger.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.Info("cron: "+msg, toFields(keysAndValues)...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := append(toFields(keysAndValues), logger.NewField("error", err))
	c.log.Error("cron: "+msg, fields...)
}

func toFields(keysAndValues []interface{}) []logger.Field {
	fields := make([]logger.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		fields = append(fields, logger.NewField(key, keysAndValues[i+1]))
	}
	return fields
}
