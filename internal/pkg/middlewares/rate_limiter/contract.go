package rate_limiter

import "ledger/pkg/logger"

type Limiter interface {
	Allow(key string) bool
}

type handlerLogger interface {
	With(fields ...logger.Field) logger.Logger
}
