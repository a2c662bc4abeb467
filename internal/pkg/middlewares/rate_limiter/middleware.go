package rate_limiter

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"ledger/internal/generated/dto"
	"ledger/internal/pkg/middlewares/auth"
	"ledger/internal/pkg/middlewares/metrics"
	"ledger/pkg/logger"
)

const (
	kindAddress = "address"
	kindIP      = "ip"
)

// Middleware лимит на вызывающего: подписанные запросы по адресу,
// анонимные по IP. Должен стоять после auth.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, kind := limitKey(r)
			if rlimiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route, kind).Inc()
			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("key", key),
			).Warn("rate limit exceeded")

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			if err := json.NewEncoder(w).Encode(dto.Error{Message: "Rate limit exceeded. Try again later."}); err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}

func limitKey(r *http.Request) (key, kind string) {
	if caller := auth.Caller(r.Context()); !caller.IsNull() {
		return caller.String(), kindAddress
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr, kindIP
	}
	return "ip:" + host, kindIP
}
