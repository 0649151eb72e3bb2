package catalog

import "github.com/prometheus/client_golang/prometheus"

type UpstreamMetrics struct {
	requests *prometheus.CounterVec
}

func NewUpstreamMetrics(reg prometheus.Registerer) *UpstreamMetrics {
	m := &UpstreamMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_upstream_requests_total",
				Help: "Calls to the book catalog provider by endpoint and outcome",
			},
			[]string{"endpoint", "status"},
		),
	}
	reg.MustRegister(m.requests)
	return m
}

func (m *UpstreamMetrics) observe(endpoint, status string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, status).Inc()
}
