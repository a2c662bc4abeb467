package outbox_relay

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutboxCursor sequence последнего события, доставленного в Kafka.
var OutboxCursor = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "ledger_outbox_cursor",
		Help: "Sequence of the last ledger event delivered to Kafka",
	},
)
