package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"ledger/pkg/logger"
)

const collectInterval = 5 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_system_cpu_usage_percent",
			Help: "Host CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_system_memory_usage_bytes",
			Help: "Host memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_application_memory_usage_bytes",
			Help: "Go heap allocation in bytes",
		},
	)

	ApplicationGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_application_goroutines",
			Help: "Number of running goroutines",
		},
	)
)

// StartSystemMetricsCollector снимает метрики хоста до отмены ctx.
// in-memory хранилище живет в куче, поэтому рост heap здесь и есть рост леджера.
func StartSystemMetricsCollector(ctx context.Context, log logger.Logger) {
	collectorLog := log.With(logger.NewField("collector", "system"))

	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				collectorLog.Info("system metrics collector stopped")
				return
			case <-ticker.C:
				collectSystemMetrics(ctx, collectorLog)
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context, log logger.Logger) {
	cpuPercent, err := cpu.PercentWithContext(ctx, time.Second, false)
	if err != nil {
		log.With(logger.NewField("error", err)).Warn("collect cpu usage")
	} else if len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		log.With(logger.NewField("error", err)).Warn("collect memory usage")
	} else {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))
	ApplicationGoroutines.Set(float64(runtime.NumGoroutine()))
}
