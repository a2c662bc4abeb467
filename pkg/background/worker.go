package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"ledger/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	resultOK    = "ok"
	resultError = "error"
	resultPanic = "panic"
)

// Task периодическая задача.
type Task interface {
	Name() string
	TTL() time.Duration
	Do(context.Context) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log handlerLogger
	wg  sync.WaitGroup
}

// New прогоняет каждую задачу один раз синхронно и только потом
// запускает периодическое выполнение до отмены ctx. Ошибка первого
// прогона останавливает старт.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	w := &Worker{log: log}

	for _, task := range tasks {
		if task.TTL() <= 0 {
			return nil, fmt.Errorf("task %q: interval must be positive, got %s", task.Name(), task.TTL())
		}
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() error {
			log.Info("task warm-up", logger.NewField("task", task.Name()))
			return w.run(initCtx, task)
		})
	}
	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		w.wg.Add(1)
		go w.loop(ctx, task)
	}
	return w, nil
}

// Wait ждет выхода всех циклов после отмены ctx, переданного в New.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task) {
	defer w.wg.Done()

	taskLog := w.log.With(
		logger.NewField("task", task.Name()),
		logger.NewField("interval", task.TTL().String()),
	)
	taskLog.Info("task scheduled")

	ticker := time.NewTicker(task.TTL())
	defer ticker.Stop()

	var failures int
	for {
		select {
		case <-ctx.Done():
			taskLog.Info("task stopped")
			return
		case <-ticker.C:
		}

		err := w.run(ctx, task)
		switch {
		case err == nil && failures > 0:
			taskLog.Info("task recovered", logger.NewField("failed_runs", failures))
			failures = 0
		case err != nil && ctx.Err() == nil:
			failures++
			taskLog.Error("task run failed",
				logger.NewField("error", err),
				logger.NewField("failed_runs", failures),
			)
		}
	}
}

// run один прогон с перехватом паники.
func (w *Worker) run(ctx context.Context, task Task) (err error) {
	start := time.Now()
	result := resultOK

	defer func() {
		if r := recover(); r != nil {
			result = resultPanic
			err = fmt.Errorf("task %q panic: %v\n%s", task.Name(), r, debug.Stack())
		}
		TaskRunsTotal.WithLabelValues(task.Name(), result).Inc()
		TaskRunDuration.WithLabelValues(task.Name()).Observe(time.Since(start).Seconds())
	}()

	if err = task.Do(ctx); err != nil {
		result = resultError
	}
	return err
}
