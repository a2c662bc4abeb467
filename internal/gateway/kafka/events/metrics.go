package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_gateway_retries_total",
			Help: "Kafka publish retries by error code of the failed attempt",
		},
		[]string{"service", "method", "reason"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_gateway_request_duration_seconds",
			Help:    "Kafka publish duration including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "kafka_code"},
	)

	EventsPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_events_published_total",
			Help: "Total number of ledger events delivered to Kafka",
		},
	)
)
