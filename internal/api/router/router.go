package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/clinicdesk/voice-ai/internal/assistant"
	httpmiddleware "github.com/clinicdesk/voice-ai/internal/http/middleware"
	"github.com/clinicdesk/voice-ai/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	AssistantHandler   *assistant.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Rate limiting for the voice endpoint; disabled when RateLimitRPS <= 0.
	RateLimitRPS   float64
	RateLimitBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/", cfg.AssistantHandler.Root)
	r.Get("/health", cfg.AssistantHandler.Health)
	if cfg.RateLimitRPS > 0 {
		r.With(httpmiddleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)).
			Post("/process-voice", cfg.AssistantHandler.ProcessVoice)
	} else {
		r.Post("/process-voice", cfg.AssistantHandler.ProcessVoice)
	}

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
