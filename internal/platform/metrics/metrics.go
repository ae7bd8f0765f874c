package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	UsersRegistered prometheus.Counter
	Logins          prometheus.Counter
	AuthFailures    prometheus.Counter
	EndpointLatency *prometheus.HistogramVec

	// Consent metrics
	ConsentsCreated prometheus.Counter
	ConsentsUpdated prometheus.Counter
	ConsentsDeleted prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "consentd_users_registered_total",
			Help: "Total number of users registered",
		}),
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "consentd_logins_total",
			Help: "Total number of successful logins",
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "consentd_auth_failures_total",
			Help: "Total number of authentication failures",
		}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "consentd_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		ConsentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "consentd_consents_created_total",
			Help: "Total number of consent records created",
		}),
		ConsentsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "consentd_consents_updated_total",
			Help: "Total number of consent records updated",
		}),
		ConsentsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "consentd_consents_deleted_total",
			Help: "Total number of consent records deleted",
		}),
	}
}

// IncrementUsersRegistered increments the users registered counter by 1
func (m *Metrics) IncrementUsersRegistered() {
	if m == nil {
		return
	}
	m.UsersRegistered.Inc()
}

func (m *Metrics) IncrementLogins() {
	if m == nil {
		return
	}
	m.Logins.Inc()
}

func (m *Metrics) IncrementAuthFailures() {
	if m == nil {
		return
	}
	m.AuthFailures.Inc()
}

// ObserveEndpointLatency records the latency for a given endpoint
func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.EndpointLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}

func (m *Metrics) IncrementConsentsCreated() {
	if m == nil {
		return
	}
	m.ConsentsCreated.Inc()
}

func (m *Metrics) IncrementConsentsUpdated() {
	if m == nil {
		return
	}
	m.ConsentsUpdated.Inc()
}

func (m *Metrics) IncrementConsentsDeleted() {
	if m == nil {
		return
	}
	m.ConsentsDeleted.Inc()
}
