package metrics

import "github.com/prometheus/client_golang/prometheus"

// QuoteMetrics exposes counters/histograms for the quote intake flow.
type QuoteMetrics struct {
	requestsTotal *prometheus.CounterVec
	sendLatency   prometheus.Histogram
}

// Outcome labels recorded on the intake counter.
const (
	OutcomeSent        = "sent"
	OutcomeRejected    = "rejected"
	OutcomeConfigError = "config_error"
	OutcomeParseError  = "parse_error"
	OutcomeSendFailed  = "send_failed"
	OutcomePanic       = "panic"
)

func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	m := &QuoteMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cinettoyage",
			Subsystem: "quotes",
			Name:      "requests_total",
			Help:      "Total quote requests received, by outcome",
		}, []string{"outcome"}),
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cinettoyage",
			Subsystem: "quotes",
			Name:      "email_send_seconds",
			Help:      "Latency of notification email dispatch",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.sendLatency)
	return m
}

func (m *QuoteMetrics) ObserveRequest(outcome string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(outcome).Inc()
}

func (m *QuoteMetrics) ObserveSendLatency(seconds float64) {
	if m == nil {
		return
	}
	m.sendLatency.Observe(seconds)
}
