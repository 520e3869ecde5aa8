package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for the chat routing flow.
type ChatMetrics struct {
	messagesTotal     *prometheus.CounterVec
	leadsTotal        *prometheus.CounterVec
	completionLatency prometheus.Histogram
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ferre",
			Subsystem: "chat",
			Name:      "messages_total",
			Help:      "Total chat responses by source",
		}, []string{"source"}),
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ferre",
			Subsystem: "chat",
			Name:      "leads_total",
			Help:      "Total lead classifications by label",
		}, []string{"label"}),
		completionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ferre",
			Subsystem: "chat",
			Name:      "completion_latency_seconds",
			Help:      "Latency of completion provider calls",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.messagesTotal, m.leadsTotal, m.completionLatency)
	return m
}

func (m *ChatMetrics) ObserveMessage(source string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(source).Inc()
}

func (m *ChatMetrics) ObserveLead(label string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(label).Inc()
}

func (m *ChatMetrics) ObserveCompletionLatency(seconds float64) {
	if m == nil {
		return
	}
	m.completionLatency.Observe(seconds)
}
