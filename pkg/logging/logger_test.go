package logging

import (
	"log/slog"
	"testing"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		level   string
		enabled slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tc := range cases {
		logger := New(tc.level, "json")
		if logger == nil {
			t.Fatalf("expected logger for level %q", tc.level)
		}
		if !logger.Enabled(nil, tc.enabled) {
			t.Fatalf("expected level %v enabled for %q", tc.enabled, tc.level)
		}
	}
}

func TestNewTextFormat(t *testing.T) {
	logger := New("info", "text")
	if logger == nil {
		t.Fatal("expected logger")
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("expected default logger")
	}
	if logger.Enabled(nil, slog.LevelDebug) {
		t.Fatal("default logger should not enable debug")
	}
}

func TestWith(t *testing.T) {
	logger := Default().With("component", "test")
	if logger == nil {
		t.Fatal("expected derived logger")
	}
}
