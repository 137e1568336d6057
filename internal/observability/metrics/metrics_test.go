package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAssistantMetrics(reg)

	m.ObserveRequest("success")
	m.ObserveRequest("success")
	m.ObserveRequest("error")

	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("success")); got != 2 {
		t.Fatalf("expected 2 success requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("error")); got != 1 {
		t.Fatalf("expected 1 error request, got %v", got)
	}
}

func TestObserveDecision(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAssistantMetrics(reg)

	m.ObserveDecision("finalize_booking", "confirm")

	if got := testutil.ToFloat64(m.decisionsTotal.WithLabelValues("finalize_booking", "confirm")); got != 1 {
		t.Fatalf("expected 1 decision, got %v", got)
	}
}

func TestNilReceiverSafe(t *testing.T) {
	var m *AssistantMetrics
	m.ObserveRequest("success")
	m.ObserveDecision("none", "other")
	m.ObserveLLMLatency("extract", 0.1)
}
