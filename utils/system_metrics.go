package utils

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/sirupsen/logrus"
)

var (
	cpuUsageGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_cpu_usage_percent",
		Help: "Host CPU usage percentage",
	})

	memUsageGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_usage_percent",
		Help: "Host memory usage percentage",
	})
)

// StartSystemMetrics samples host CPU and memory usage into prometheus
// gauges on the given interval. Runs until the process exits.
func StartSystemMetrics(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if percentage, err := cpu.Percent(0, false); err != nil {
				logrus.WithError(err).Warn("failed to sample CPU usage")
			} else if len(percentage) > 0 {
				cpuUsageGauge.Set(percentage[0])
			}

			if vm, err := mem.VirtualMemory(); err != nil {
				logrus.WithError(err).Warn("failed to sample memory usage")
			} else {
				memUsageGauge.Set(vm.UsedPercent)
			}
		}
	}()
}
