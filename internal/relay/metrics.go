package relay

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
	outcomeRejected  = "rejected"
)

type metrics struct {
	summarizeTotal  *prometheus.CounterVec
	upstreamLatency prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		summarizeTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tldr_summarize_requests_total",
				Help: "Summarize requests by outcome",
			},
			[]string{"outcome"},
		),
		// Completions usually take seconds, so the buckets stretch well past the HTTP defaults.
		upstreamLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tldr_upstream_duration_seconds",
				Help:    "Latency of completion calls to the LLM provider",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),
	}
	reg.MustRegister(m.summarizeTotal, m.upstreamLatency)
	return m
}

func (m *metrics) observe(outcome string) {
	m.summarizeTotal.WithLabelValues(outcome).Inc()
}
