package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"ledger/internal/generated/dto"
)

// Middleware пока идет readiness drain, запросы еще обслуживаются.
// После server.Shutdown запросы с keep-alive соединений получают 503
// и закрытие соединения.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", "5")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(dto.Error{Message: "Ledger is shutting down"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
