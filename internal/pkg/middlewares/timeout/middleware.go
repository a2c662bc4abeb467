package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ledger/pkg/logger"
)

type handlerLogger interface {
	With(fields ...logger.Field) logger.Logger
}

// Middleware ограничивает время запроса. Запись, не успевшая к дедлайну,
// откатывается вместе с транзакцией. timeout <= 0 отключает ограничение.
func Middleware(log handlerLogger, timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("timeout", timeout.String()),
				).Warn("request deadline exceeded")
			}
		})
	}
}
