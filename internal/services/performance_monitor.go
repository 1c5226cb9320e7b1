package services

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/sirupsen/logrus"
)

// PerformanceMonitor periodically logs process and host resource usage so
// long forecast horizons and large graph queries are observable in
// production.
type PerformanceMonitor struct {
	logger   *logrus.Logger
	interval time.Duration
	stopChan chan struct{}
}

// NewPerformanceMonitor creates a monitor that samples on the given interval.
func NewPerformanceMonitor(logger *logrus.Logger, interval time.Duration) *PerformanceMonitor {
	return &PerformanceMonitor{
		logger:   logger,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start launches the sampling loop.
func (m *PerformanceMonitor) Start() {
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.logSample()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop terminates the sampling loop.
func (m *PerformanceMonitor) Stop() {
	close(m.stopChan)
}

func (m *PerformanceMonitor) logSample() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	fields := logrus.Fields{
		"goroutines": runtime.NumGoroutine(),
		"heap_alloc": ms.HeapAlloc,
		"num_gc":     ms.NumGC,
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		fields["mem_used_percent"] = vm.UsedPercent
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		fields["cpu_percent"] = percents[0]
	}

	m.logger.WithFields(fields).Debug("Resource usage sample")
}
