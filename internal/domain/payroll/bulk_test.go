package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestGenerateBulkIsolatesFailures(t *testing.T) {
	store := newFakeStore()
	store.library = standardLibrary()
	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("e%d", i)
		store.active = append(store.active, id)
		if i != 3 {
			store.profiles[id] = standardProfile()
			store.records[id] = fullMonthPresent(6, 2025)
		}
	}

	svc := NewService(store, nil, 3, t.TempDir())
	result, err := svc.GenerateBulk(context.Background(), 6, 2025)

	var partial *PartialBatchError
	if !errors.As(err, &partial) {
		t.Fatalf("err = %v, want PartialBatchError", err)
	}
	if len(result.Payslips) != 4 {
		t.Fatalf("payslips = %d, want 4", len(result.Payslips))
	}
	if len(result.Failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(result.Failures))
	}
	if result.Failures[0].EmployeeID != "e3" {
		t.Fatalf("failed employee = %s, want e3", result.Failures[0].EmployeeID)
	}
	for _, slip := range result.Payslips {
		if slip.NetSalary != 20200 {
			t.Fatalf("employee %s net = %v, want 20200", slip.EmployeeID, slip.NetSalary)
		}
	}
}

func TestGenerateBulkAllSucceed(t *testing.T) {
	store := newFakeStore()
	store.library = standardLibrary()
	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("e%02d", i)
		store.active = append(store.active, id)
		store.profiles[id] = standardProfile()
		store.records[id] = fullMonthPresent(6, 2025)
	}

	svc := NewService(store, nil, 4, t.TempDir())
	result, err := svc.GenerateBulk(context.Background(), 6, 2025)
	if err != nil {
		t.Fatalf("GenerateBulk: %v", err)
	}
	if len(result.Payslips) != 10 {
		t.Fatalf("payslips = %d, want 10", len(result.Payslips))
	}
	// Collected concurrently, delivered in stable order.
	for i := 1; i < len(result.Payslips); i++ {
		if result.Payslips[i-1].EmployeeID > result.Payslips[i].EmployeeID {
			t.Fatalf("payslips out of order at %d", i)
		}
	}
}

func TestGenerateBulkEmptyRoster(t *testing.T) {
	store := newFakeStore()
	store.library = standardLibrary()

	svc := NewService(store, nil, 2, t.TempDir())
	result, err := svc.GenerateBulk(context.Background(), 6, 2025)
	if err != nil {
		t.Fatalf("GenerateBulk: %v", err)
	}
	if len(result.Payslips) != 0 || len(result.Failures) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestGenerateBulkCancelledContext(t *testing.T) {
	store := newFakeStore()
	store.library = standardLibrary()
	store.active = []string{"e1"}
	store.profiles["e1"] = standardProfile()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(store, nil, 2, t.TempDir())
	if _, err := svc.GenerateBulk(ctx, 6, 2025); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
