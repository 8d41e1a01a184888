package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamMetrics counts calls to the studio API.
type UpstreamMetrics struct {
	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

func NewUpstreamMetrics(reg prometheus.Registerer) *UpstreamMetrics {
	m := &UpstreamMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inkdesk",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total requests sent to the studio API",
		}, []string{"endpoint", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "inkdesk",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of studio API requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestLatency)
	return m
}

// ObserveRequest records one finished call. status 0 means the request never got a response.
func (m *UpstreamMetrics) ObserveRequest(endpoint string, status int, seconds float64) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requestsTotal.WithLabelValues(endpoint, label).Inc()
	m.requestLatency.WithLabelValues(endpoint).Observe(seconds)
}

// WizardMetrics counts appointment wizard activity.
type WizardMetrics struct {
	transitionsTotal  *prometheus.CounterVec
	submissionsTotal  *prometheus.CounterVec
	lookupMissesTotal *prometheus.CounterVec
	staleResultsTotal prometheus.Counter
}

func NewWizardMetrics(reg prometheus.Registerer) *WizardMetrics {
	m := &WizardMetrics{
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inkdesk",
			Subsystem: "wizard",
			Name:      "transitions_total",
			Help:      "Wizard navigation actions by outcome",
		}, []string{"action", "outcome"}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inkdesk",
			Subsystem: "wizard",
			Name:      "submissions_total",
			Help:      "Appointment submissions by result",
		}, []string{"result"}),
		lookupMissesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inkdesk",
			Subsystem: "wizard",
			Name:      "lookup_misses_total",
			Help:      "Draft labels that did not resolve to an id",
		}, []string{"field"}),
		staleResultsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "inkdesk",
			Subsystem: "wizard",
			Name:      "stale_results_total",
			Help:      "Fetch results dropped because the wizard moved on",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.transitionsTotal, m.submissionsTotal, m.lookupMissesTotal, m.staleResultsTotal)
	return m
}

func (m *WizardMetrics) ObserveTransition(action, outcome string) {
	if m == nil {
		return
	}
	m.transitionsTotal.WithLabelValues(action, outcome).Inc()
}

func (m *WizardMetrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(result).Inc()
}

func (m *WizardMetrics) ObserveLookupMiss(field string) {
	if m == nil {
		return
	}
	m.lookupMissesTotal.WithLabelValues(field).Inc()
}

func (m *WizardMetrics) ObserveStaleResult() {
	if m == nil {
		return
	}
	m.staleResultsTotal.Inc()
}
