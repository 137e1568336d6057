package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clinicdesk/voice-ai/internal/assistant"
	"github.com/clinicdesk/voice-ai/pkg/logging"
)

type stubService struct{}

func (stubService) ProcessVoice(_ context.Context, req assistant.ProcessRequest) (*assistant.ProcessResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, assistant.ErrEmptyText
	}
	return &assistant.ProcessResponse{
		Success:        true,
		StructuredData: assistant.Record{Intent: assistant.IntentQuery, MissingInfo: []string{}},
	}, nil
}

func newTestRouter() http.Handler {
	handler := assistant.NewHandler(stubService{}, logging.Default())
	return New(&Config{
		Logger:           logging.Default(),
		AssistantHandler: handler,
	})
}

func TestRouterLiveness(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "running") {
		t.Fatalf("expected liveness body, got %s", w.Body.String())
	}
}

func TestRouterHealth(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRouterProcessVoice(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/process-voice", strings.NewReader(`{"text": "hello"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRouterProcessVoiceEmptyText(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/process-voice", strings.NewReader(`{"text": ""}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestRouterMetricsMounted(t *testing.T) {
	handler := assistant.NewHandler(stubService{}, logging.Default())
	r := New(&Config{
		AssistantHandler: handler,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, w.Code)
	}
}
