package assistant

import (
	"testing"
	"time"
)

func TestNewClockBerlin(t *testing.T) {
	clock := NewClock("Europe/Berlin")
	now := clock.Now()

	if got := now.Location().String(); got != "Europe/Berlin" {
		t.Fatalf("expected Europe/Berlin location, got %s", got)
	}
}

func TestNewClockInvalidTimezoneFallsBackToUTC(t *testing.T) {
	clock := NewClock("Not/AZone")
	if got := clock.Now().Location(); got != time.UTC {
		t.Fatalf("expected UTC fallback, got %s", got)
	}
}

func TestFormatClinicTimestamp(t *testing.T) {
	ts := time.Date(2025, 6, 9, 14, 5, 9, 0, time.UTC)
	if got := FormatClinicTimestamp(ts); got != "2025-06-09 14:05:09" {
		t.Fatalf("unexpected timestamp format %q", got)
	}
}
