package background

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TaskRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_background_task_runs_total",
			Help: "Background task runs by result (ok, error, panic)",
		},
		[]string{"task", "result"},
	)

	TaskRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_background_task_run_duration_seconds",
			Help:    "Duration of a single background task run",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"task"},
	)
)
