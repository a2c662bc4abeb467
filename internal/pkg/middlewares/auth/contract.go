package auth

import "ledger/pkg/logger"

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// ReplayGuard отмечает принятые подписи, повтор должен вернуть true.
type ReplayGuard interface {
	Seen(key string) bool
}
