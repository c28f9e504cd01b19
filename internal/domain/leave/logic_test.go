package leave

import (
	"testing"
	"time"
)

func date(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateDaysInclusive(t *testing.T) {
	days, err := CalculateDays(date(1), date(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 5 {
		t.Fatalf("expected 5 days, got %v", days)
	}
}

func TestCalculateDaysReversedRange(t *testing.T) {
	if _, err := CalculateDays(date(5), date(1)); err == nil {
		t.Fatal("expected error for reversed range")
	}
}

func TestOverlapClipsToPeriod(t *testing.T) {
	days := Overlap(date(25), time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC), date(1), date(30))
	if days != 6 {
		t.Fatalf("expected 6 overlapping days, got %v", days)
	}
}

func TestOverlapDisjoint(t *testing.T) {
	if days := Overlap(date(1), date(3), date(10), date(20)); days != 0 {
		t.Fatalf("expected 0 overlap, got %v", days)
	}
}
