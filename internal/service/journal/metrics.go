package journal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsAppendedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_events_appended_total",
			Help: "Total number of events appended to the ledger journal",
		},
		[]string{"type"},
	)

	ChainVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_chain_verifications_total",
			Help: "Total number of full journal chain verifications",
		},
		[]string{"result"},
	)

	LastVerifiedSequence = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_chain_last_verified_sequence",
			Help: "Sequence of the last event covered by a successful chain verification",
		},
	)
)
