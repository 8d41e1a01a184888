package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestUpstreamMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewUpstreamMetrics(reg)

	m.ObserveRequest("create_appointment", 201, 0.2)
	m.ObserveRequest("create_appointment", 0, 0.1)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("create_appointment", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("create_appointment", "error")))
}

func TestWizardMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWizardMetrics(reg)

	m.ObserveTransition("next", "invalid")
	m.ObserveSubmission("created")
	m.ObserveLookupMiss("service")
	m.ObserveLookupMiss("service")
	m.ObserveStaleResult()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.lookupMissesTotal.WithLabelValues("service")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.staleResultsTotal))
}

func TestMetricsNilSafe(t *testing.T) {
	var u *UpstreamMetrics
	u.ObserveRequest("me", 200, 0.1)

	var w *WizardMetrics
	w.ObserveTransition("back", "ok")
	w.ObserveSubmission("failed")
	w.ObserveLookupMiss("location")
	w.ObserveStaleResult()
}
