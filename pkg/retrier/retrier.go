package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждым повтором: ошибка попытки и пауза до следующей.
type NotifyFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration // 0 = без ограничения
	MaxRetries      uint64        // 0 = без ограничения
	Randomization   float64
	Multiplier      float64

	// nil = ретраятся все ошибки
	ShouldRetry ShouldRetryFunc
	OnRetry     NotifyFunc
}
