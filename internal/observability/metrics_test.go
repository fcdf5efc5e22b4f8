package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounts(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/departments", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/departments", "GET", 200, 30*time.Millisecond)
	m.RecordError("/departments/:id", "GET", "NOT_FOUND")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["/departments|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/departments/:id|GET|NOT_FOUND"])
	assert.InDelta(t, 20.0, snap.AvgLatencyMilli, 0.001)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")

	snap := m.Snapshot()
	assert.Empty(t, snap.Requests)
	assert.Empty(t, snap.Errors)
}
