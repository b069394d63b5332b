package tablekit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	mc.RecordSearch(100*time.Nanosecond, 5)
	mc.RecordSearch(300*time.Nanosecond, 2)
	mc.RecordSort(50*time.Nanosecond, 7)
	mc.RecordPaginate(10)
	mc.RecordSelection(3)

	stats := mc.GetStats()
	assert.EqualValues(t, 2, stats.SearchCount)
	assert.EqualValues(t, 200, stats.SearchAvgNanos)
	assert.EqualValues(t, 1, stats.SortCount)
	assert.EqualValues(t, 50, stats.SortAvgNanos)
	assert.EqualValues(t, 1, stats.PaginateCount)
	assert.EqualValues(t, 1, stats.SelectionCount)
}

func TestBasicMetricsCollectorEmpty(t *testing.T) {
	mc := &BasicMetricsCollector{}
	stats := mc.GetStats()
	assert.Zero(t, stats.SearchCount)
	assert.Zero(t, stats.SearchAvgNanos)
	assert.Zero(t, stats.SortAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		mc.RecordSearch(time.Millisecond, 1)
		mc.RecordSort(time.Millisecond, 1)
		mc.RecordPaginate(1)
		mc.RecordSelection(1)
	})
}
