package metrics

import "ledger/pkg/logger"

type handlerLogger interface {
	With(fields ...logger.Field) logger.Logger
}
