package shared

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseDateDayOnly(t *testing.T) {
	got, err := ParseDate("2025-06-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	got, err := ParseDate("2025-06-15T09:30:00Z")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Hour() != 9 || got.Minute() != 30 {
		t.Fatalf("timestamp not preserved: %v", got)
	}
}

func TestParseDateEmptyIsZero(t *testing.T) {
	got, err := ParseDate("")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("got %v, want zero time", got)
	}
}

func TestParseDateGarbage(t *testing.T) {
	if _, err := ParseDate("june the 15th"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestParsePaginationDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/payroll/payslips", nil)
	p := ParsePagination(r, 12, 100)
	if p.Limit != 12 || p.Offset != 0 {
		t.Fatalf("got %+v, want limit 12 offset 0", p)
	}
}

func TestParsePaginationClampsAndRejectsNegatives(t *testing.T) {
	r := httptest.NewRequest("GET", "/payroll/payslips?limit=500&offset=-3", nil)
	p := ParsePagination(r, 12, 100)
	if p.Limit != 100 {
		t.Fatalf("limit = %d, want clamp to 100", p.Limit)
	}
	if p.Offset != 0 {
		t.Fatalf("offset = %d, want 0", p.Offset)
	}
}

func TestParsePaginationExplicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/payroll/payslips?limit=24&offset=48", nil)
	p := ParsePagination(r, 12, 100)
	if p.Limit != 24 || p.Offset != 48 {
		t.Fatalf("got %+v, want limit 24 offset 48", p)
	}
}
