package audit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuditedEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_audit_events_total",
			Help: "Total number of relayed ledger events processed by the audit worker",
		},
		[]string{"type", "result"},
	)

	AuditCheckpointSequence = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_audit_checkpoint_sequence",
			Help: "Sequence of the last event verified by the audit worker",
		},
	)
)
