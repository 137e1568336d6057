package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clinicdesk/voice-ai/pkg/logging"
)

// VoiceProcessor is the slice of Service the handler depends on; narrowed so
// tests can substitute a stub.
type VoiceProcessor interface {
	ProcessVoice(ctx context.Context, req ProcessRequest) (*ProcessResponse, error)
}

// Handler wires HTTP requests to the assistant service.
type Handler struct {
	service VoiceProcessor
	logger  *logging.Logger
}

// NewHandler creates an assistant handler.
func NewHandler(service VoiceProcessor, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

// Root handles GET / as a liveness message.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "AI Clinic Voice Assistant Service is running",
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ProcessVoice handles POST /process-voice.
func (h *Handler) ProcessVoice(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode process-voice request", "error", err)
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.service.ProcessVoice(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmptyText) {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "text is required"})
			return
		}
		h.logger.Error("failed to process voice request", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:  "failed to process voice request",
			Detail: err.Error(),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
