package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clinicdesk/voice-ai/internal/api/router"
	"github.com/clinicdesk/voice-ai/internal/assistant"
	appconfig "github.com/clinicdesk/voice-ai/internal/config"
	"github.com/clinicdesk/voice-ai/internal/observability/metrics"
	"github.com/clinicdesk/voice-ai/pkg/logging"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting clinic voice assistant service",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	llmClient, err := assistant.NewOpenAIClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GenerationModel)
	if err != nil {
		logger.Error("failed to create LLM client", "error", err)
		os.Exit(1)
	}

	// Optional Gemini fallback for the generation calls.
	var generator assistant.LLMClient = llmClient
	if cfg.GeminiAPIKey != "" {
		gemini, err := assistant.NewGeminiLLMClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("failed to create gemini fallback client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		generator = assistant.NewFallbackLLMClient(llmClient, gemini, logger)
	}

	clock := assistant.NewClock(cfg.ClinicTimezone)
	assistantMetrics := metrics.NewAssistantMetrics(prometheus.DefaultRegisterer)

	extractor := assistant.NewExtractor(llmClient, clock, cfg.ExtractionModel, logger)
	service := assistant.NewService(extractor, generator, clock, cfg.GenerationModel, assistantMetrics, logger)
	handler := assistant.NewHandler(service, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		AssistantHandler:   handler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLMTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
