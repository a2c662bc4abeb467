package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitExceededTotal kind: address для подписанных, ip для анонимных.
var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_rate_limit_exceeded_total",
		Help: "Ledger requests rejected by the per-caller rate limiter",
	},
	[]string{"method", "route", "kind"},
)
