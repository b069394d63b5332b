package tablekit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
//
// The collector also makes memoization observable: a selection toggle must
// not re-run search or sort, so RecordSearch/RecordSort fire only on actual
// recomputation.
type MetricsCollector interface {
	// RecordSearch is called after each search recomputation.
	// matched is the number of rows that passed the filter.
	RecordSearch(duration time.Duration, matched int)

	// RecordSort is called after each sort recomputation.
	RecordSort(duration time.Duration, rows int)

	// RecordPaginate is called after each window computation.
	RecordPaginate(windowRows int)

	// RecordSelection is called after each selection mutation.
	// selected is the total number of selected identifiers afterwards.
	RecordSelection(selected int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(time.Duration, int) {}
func (NoopMetricsCollector) RecordSort(time.Duration, int)   {}
func (NoopMetricsCollector) RecordPaginate(int)              {}
func (NoopMetricsCollector) RecordSelection(int)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchTotalNanos atomic.Int64
	SortCount        atomic.Int64
	SortTotalNanos   atomic.Int64
	PaginateCount    atomic.Int64
	SelectionCount   atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(duration time.Duration, matched int) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
}

// RecordSort implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSort(duration time.Duration, rows int) {
	b.SortCount.Add(1)
	b.SortTotalNanos.Add(duration.Nanoseconds())
}

// RecordPaginate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPaginate(windowRows int) {
	b.PaginateCount.Add(1)
}

// RecordSelection implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelection(selected int) {
	b.SelectionCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SearchCount:    b.SearchCount.Load(),
		SearchAvgNanos: avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		SortCount:      b.SortCount.Load(),
		SortAvgNanos:   avg(b.SortTotalNanos.Load(), b.SortCount.Load()),
		PaginateCount:  b.PaginateCount.Load(),
		SelectionCount: b.SelectionCount.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount    int64
	SearchAvgNanos int64
	SortCount      int64
	SortAvgNanos   int64
	PaginateCount  int64
	SelectionCount int64
}
