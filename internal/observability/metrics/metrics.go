package metrics

import "github.com/prometheus/client_golang/prometheus"

// AssistantMetrics exposes counters/histograms for the voice pipeline.
type AssistantMetrics struct {
	requestsTotal  *prometheus.CounterVec
	decisionsTotal *prometheus.CounterVec
	llmLatency     *prometheus.HistogramVec
}

func NewAssistantMetrics(reg prometheus.Registerer) *AssistantMetrics {
	m := &AssistantMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicvoice",
			Subsystem: "assistant",
			Name:      "requests_total",
			Help:      "Total voice processing requests",
		}, []string{"outcome"}),
		decisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicvoice",
			Subsystem: "assistant",
			Name:      "decisions_total",
			Help:      "Resolver decisions by action",
		}, []string{"action", "intent"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clinicvoice",
			Subsystem: "assistant",
			Name:      "llm_latency_seconds",
			Help:      "Latency of external LLM calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.decisionsTotal, m.llmLatency)
	return m
}

func (m *AssistantMetrics) ObserveRequest(outcome string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(outcome).Inc()
}

func (m *AssistantMetrics) ObserveDecision(action, intent string) {
	if m == nil {
		return
	}
	m.decisionsTotal.WithLabelValues(action, intent).Inc()
}

func (m *AssistantMetrics) ObserveLLMLatency(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.llmLatency.WithLabelValues(operation).Observe(seconds)
}
