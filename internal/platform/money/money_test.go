package money

import "testing"

func TestRound2HalfUp(t *testing.T) {
	if got := Round2(10.005); got != 10.01 {
		t.Fatalf("expected 10.01, got %v", got)
	}
	if got := Round2(10.004); got != 10.00 {
		t.Fatalf("expected 10.00, got %v", got)
	}
}

func TestPercentOf(t *testing.T) {
	if got := PercentOf(20000, 10); got != 2000 {
		t.Fatalf("expected 2000, got %v", got)
	}
	if got := PercentOf(33333, 7.5); got != 2499.98 {
		t.Fatalf("expected 2499.98, got %v", got)
	}
}

func TestScale(t *testing.T) {
	if got := Scale(9000, 0.5); got != 4500 {
		t.Fatalf("expected 4500, got %v", got)
	}
	if got := Scale(1000, 1.0); got != 1000 {
		t.Fatalf("expected 1000, got %v", got)
	}
}

func TestRoundWhole(t *testing.T) {
	if got := RoundWhole(1537.5); got != 1538 {
		t.Fatalf("expected 1538, got %v", got)
	}
	if got := RoundWhole(1537.49); got != 1537 {
		t.Fatalf("expected 1537, got %v", got)
	}
}
