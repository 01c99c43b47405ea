package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecordRequest(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/auth/login", "POST", 200, 5*time.Millisecond)
	m.RecordRequest("/auth/login", "POST", 200, 7*time.Millisecond)

	counter := m.requestTotal.WithLabelValues("/auth/login", "POST", "200")
	assert.Equal(t, float64(2), testutil.ToFloat64(counter))
}

func TestMetricsRecordError(t *testing.T) {
	m := NewMetrics()

	m.RecordError("/auth/login", "POST", "F008")

	counter := m.errorTotal.WithLabelValues("/auth/login", "POST", "F008")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/x", "GET", 200, time.Millisecond)
	m.RecordError("/x", "GET", "E001")
}
