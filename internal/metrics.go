package internal

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector collects parse counters for a processor
type MetricsCollector struct {
	totalOperations     int64
	successfulOps       int64
	failedOps           int64
	totalProcessingTime int64
	maxProcessingTime   int64
	minProcessingTime   int64
	activeConcurrentOps int64
	maxConcurrentOps    int64
	resultsByKind       sync.Map
	errorsByType        sync.Map
	startTime           time.Time
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		startTime:         time.Now(),
		minProcessingTime: 1<<63 - 1, // Max int64 value
	}
}

// RecordParse records a finished parse under kind, usually the status name
func (mc *MetricsCollector) RecordParse(kind string, duration time.Duration, success bool) {
	atomic.AddInt64(&mc.totalOperations, 1)

	if success {
		atomic.AddInt64(&mc.successfulOps, 1)
	} else {
		atomic.AddInt64(&mc.failedOps, 1)
	}
	incrementCounter(&mc.resultsByKind, kind)

	durationNs := duration.Nanoseconds()
	if durationNs > 0 {
		atomic.AddInt64(&mc.totalProcessingTime, durationNs)
		updateMax(&mc.maxProcessingTime, durationNs)
		updateMin(&mc.minProcessingTime, durationNs)
	}
}

// StartConcurrentOperation records the start of a concurrent operation
func (mc *MetricsCollector) StartConcurrentOperation() {
	current := atomic.AddInt64(&mc.activeConcurrentOps, 1)
	updateMax(&mc.maxConcurrentOps, current)
}

// EndConcurrentOperation records the end of a concurrent operation
func (mc *MetricsCollector) EndConcurrentOperation() {
	atomic.AddInt64(&mc.activeConcurrentOps, -1)
}

// RecordError records an error by type
func (mc *MetricsCollector) RecordError(errorType string) {
	incrementCounter(&mc.errorsByType, errorType)
}

// GetMetrics returns current metrics
func (mc *MetricsCollector) GetMetrics() Metrics {
	totalOps := atomic.LoadInt64(&mc.totalOperations)
	totalTime := atomic.LoadInt64(&mc.totalProcessingTime)

	var avgProcessingTime time.Duration
	if totalOps > 0 {
		avgProcessingTime = time.Duration(totalTime / totalOps)
	}

	minTime := atomic.LoadInt64(&mc.minProcessingTime)
	if minTime == 1<<63-1 {
		minTime = 0
	}

	return Metrics{
		TotalOperations:     totalOps,
		SuccessfulOps:       atomic.LoadInt64(&mc.successfulOps),
		FailedOps:           atomic.LoadInt64(&mc.failedOps),
		TotalProcessingTime: time.Duration(totalTime),
		AvgProcessingTime:   avgProcessingTime,
		MaxProcessingTime:   time.Duration(atomic.LoadInt64(&mc.maxProcessingTime)),
		MinProcessingTime:   time.Duration(minTime),
		ActiveConcurrentOps: atomic.LoadInt64(&mc.activeConcurrentOps),
		MaxConcurrentOps:    atomic.LoadInt64(&mc.maxConcurrentOps),
		Uptime:              time.Since(mc.startTime),
		ResultsByKind:       snapshotCounters(&mc.resultsByKind),
		ErrorsByType:        snapshotCounters(&mc.errorsByType),
	}
}

// GetSummary returns a formatted summary of metrics
func (mc *MetricsCollector) GetSummary() string {
	metrics := mc.GetMetrics()

	kinds := make([]string, 0, len(metrics.ResultsByKind))
	for k := range metrics.ResultsByKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	var sb strings.Builder
	for i, k := range kinds {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%d", k, metrics.ResultsByKind[k])
	}

	return fmt.Sprintf(`Metrics Summary:
  Operations: %d total (%d successful, %d failed)
  Results: %s
  Performance: avg %v, max %v, min %v
  Concurrency: %d active, %d max concurrent
  Uptime: %v`,
		metrics.TotalOperations,
		metrics.SuccessfulOps,
		metrics.FailedOps,
		sb.String(),
		metrics.AvgProcessingTime,
		metrics.MaxProcessingTime,
		metrics.MinProcessingTime,
		metrics.ActiveConcurrentOps,
		metrics.MaxConcurrentOps,
		metrics.Uptime,
	)
}

// Metrics represents collected parse metrics
type Metrics struct {
	// Operation metrics
	TotalOperations int64 `json:"total_operations"`
	SuccessfulOps   int64 `json:"successful_ops"`
	FailedOps       int64 `json:"failed_ops"`

	// Performance metrics
	TotalProcessingTime time.Duration `json:"total_processing_time"`
	AvgProcessingTime   time.Duration `json:"avg_processing_time"`
	MaxProcessingTime   time.Duration `json:"max_processing_time"`
	MinProcessingTime   time.Duration `json:"min_processing_time"`

	// Concurrency metrics
	ActiveConcurrentOps int64 `json:"active_concurrent_ops"`
	MaxConcurrentOps    int64 `json:"max_concurrent_ops"`

	Uptime        time.Duration    `json:"uptime"`
	ResultsByKind map[string]int64 `json:"results_by_kind"`
	ErrorsByType  map[string]int64 `json:"errors_by_type"`
}

func incrementCounter(m *sync.Map, key string) {
	actual, _ := m.LoadOrStore(key, new(int64))
	atomic.AddInt64(actual.(*int64), 1)
}

func snapshotCounters(m *sync.Map) map[string]int64 {
	out := make(map[string]int64)
	m.Range(func(key, value any) bool {
		if k, ok := key.(string); ok {
			if v, ok := value.(*int64); ok {
				out[k] = atomic.LoadInt64(v)
			}
		}
		return true
	})
	return out
}

// updateMax atomically updates target to value if value is greater
func updateMax(target *int64, value int64) {
	for {
		current := atomic.LoadInt64(target)
		if value <= current || atomic.CompareAndSwapInt64(target, current, value) {
			return
		}
	}
}

// updateMin atomically updates target to value if value is smaller
func updateMin(target *int64, value int64) {
	for {
		current := atomic.LoadInt64(target)
		if value >= current || atomic.CompareAndSwapInt64(target, current, value) {
			return
		}
	}
}
