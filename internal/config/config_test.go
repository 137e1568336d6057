package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.GroqBaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("unexpected groq base url %s", cfg.GroqBaseURL)
	}
	if cfg.ExtractionModel != "llama-3.3-70b-versatile" {
		t.Errorf("unexpected extraction model %s", cfg.ExtractionModel)
	}
	if cfg.ClinicTimezone != "Europe/Berlin" {
		t.Errorf("unexpected clinic timezone %s", cfg.ClinicTimezone)
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Errorf("unexpected llm timeout %s", cfg.LLMTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GROQ_API_KEY", "key-123")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://clinic.example, https://admin.clinic.example")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port override, got %s", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level override, got %s", cfg.LogLevel)
	}
	if cfg.GroqAPIKey != "key-123" {
		t.Errorf("expected api key override, got %s", cfg.GroqAPIKey)
	}
	if cfg.LLMTimeout != 5*time.Second {
		t.Errorf("expected timeout override, got %s", cfg.LLMTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "https://clinic.example" {
		t.Errorf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
}

func TestLegacyGrokKeyFallback(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GROK_KEY", "legacy-key")

	cfg := Load()

	if cfg.GroqAPIKey != "legacy-key" {
		t.Errorf("expected legacy GROK_KEY fallback, got %s", cfg.GroqAPIKey)
	}
}
