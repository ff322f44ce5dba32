package handlers

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors shared by the handlers.
// Both counters are labeled by endpoint, e.g. "POST /tasks".
type Metrics struct {
	EndpointCalls *prometheus.CounterVec
	Errors        *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EndpointCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskservice_endpoint_calls_total",
			Help: "Total number of calls to each endpoint.",
		}, []string{"endpoint"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskservice_errors_total",
			Help: "Total number of errors occurred in the application.",
		}, []string{"endpoint"}),
	}
	reg.MustRegister(m.EndpointCalls, m.Errors)
	return m
}
