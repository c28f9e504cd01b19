package payroll

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"hrpay/internal/domain/attendance"
	"hrpay/internal/domain/component"
	"hrpay/internal/domain/salary"
)

type fakeStore struct {
	mu       sync.Mutex
	library  map[string]component.Definition
	profiles map[string][]salary.Assigned
	records  map[string][]attendance.Record
	active   []string
	slips    map[string]Payslip
	upserts  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		library:  map[string]component.Definition{},
		profiles: map[string][]salary.Assigned{},
		records:  map[string][]attendance.Record{},
		slips:    map[string]Payslip{},
	}
}

func (f *fakeStore) ComponentLibrary(ctx context.Context) (map[string]component.Definition, error) {
	return f.library, nil
}

func (f *fakeStore) SalaryProfile(ctx context.Context, employeeID string) ([]salary.Assigned, error) {
	assigned, ok := f.profiles[employeeID]
	if !ok || len(assigned) == 0 {
		return nil, salary.ErrProfileNotFound
	}
	return assigned, nil
}

func (f *fakeStore) AttendanceRecords(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	return f.records[employeeID], nil
}

func (f *fakeStore) ListActiveEmployeeIDs(ctx context.Context) ([]string, error) {
	return f.active, nil
}

func (f *fakeStore) EmployeeName(ctx context.Context, employeeID string) (string, error) {
	return "Test Employee", nil
}

func (f *fakeStore) UpsertPayslip(ctx context.Context, slip *Payslip) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := slipKey(slip.EmployeeID, slip.Month, slip.Year)
	if existing, ok := f.slips[key]; ok {
		slip.ID = existing.ID
	} else {
		slip.ID = fmt.Sprintf("slip-%d", len(f.slips)+1)
	}
	slip.CreatedAt = time.Now()
	f.slips[key] = *slip
	f.upserts++
	return nil
}

func (f *fakeStore) GetPayslip(ctx context.Context, employeeID string, month, year int) (Payslip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slip, ok := f.slips[slipKey(employeeID, month, year)]
	if !ok {
		return Payslip{}, ErrPayslipNotFound
	}
	return slip, nil
}

func (f *fakeStore) ListPayslips(ctx context.Context, employeeID string, limit, offset int) ([]Payslip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var slips []Payslip
	for _, slip := range f.slips {
		if slip.EmployeeID == employeeID {
			slips = append(slips, slip)
		}
	}
	return slips, nil
}

func (f *fakeStore) UpdatePayslipFileURL(ctx context.Context, payslipID, fileURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, slip := range f.slips {
		if slip.ID == payslipID {
			slip.FileURL = fileURL
			f.slips[key] = slip
		}
	}
	return nil
}

func slipKey(employeeID string, month, year int) string {
	return fmt.Sprintf("%s/%04d-%02d", employeeID, year, month)
}

func standardLibrary() map[string]component.Definition {
	return map[string]component.Definition{
		"basic": {ID: "basic", Name: "Basic Salary", Category: component.CategoryEarning, ProRata: true, IsBasicSalary: true},
		"hra":   {ID: "hra", Name: "HRA", Category: component.CategoryEarning, ProRata: true},
		"pf":    {ID: "pf", Name: "Provident Fund", Category: component.CategoryDeduction},
	}
}

func standardProfile() []salary.Assigned {
	return []salary.Assigned{
		{ComponentID: "basic", CalcType: salary.CalcTypeFixed, Value: 20000},
		{ComponentID: "hra", CalcType: salary.CalcTypePercentage, Value: 10},
		{ComponentID: "pf", CalcType: salary.CalcTypeFixed, Value: 1800},
	}
}

func fullMonthPresent(month, year int) []attendance.Record {
	start, end := attendance.MonthRange(month, year)
	var records []attendance.Record
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		records = append(records, attendance.Record{Date: day, Status: attendance.StatusPresent})
	}
	return records
}

func TestGenerateFullMonth(t *testing.T) {
	store := newFakeStore()
	store.library = standardLibrary()
	store.profiles["e1"] = standardProfile()
	store.records["e1"] = fullMonthPresent(6, 2025)

	svc := NewService(store, nil, 1, t.TempDir())
	slip, err := svc.Generate(context.Background(), "e1", 6, 2025)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if slip.GrossEarnings != 22000 {
		t.Fatalf("gross = %v, want 22000", slip.GrossEarnings)
	}
	if slip.TotalDeductions != 1800 {
		t.Fatalf("deductions = %v, want 1800", slip.TotalDeductions)
	}
	if slip.NetSalary != 20200 {
		t.Fatalf("net = %v, want 20200", slip.NetSalary)
	}
	if len(slip.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", slip.Warnings)
	}
	if slip.Breakdown.PresentDays != 30 {
		t.Fatalf("present days = %d, want 30", slip.Breakdown.PresentDays)
	}
}

func TestGenerateProratesEarnings(t *testing.T) {
	store := newFakeStore()
	store.library = standardLibrary()
	store.profiles["e1"] = standardProfile()

	// 15 of 30 days present, rest unrecorded (absent).
	start, _ := attendance.MonthRange(6, 2025)
	var records []attendance.Record
	for i := 0; i < 15; i++ {
		records = append(records, attendance.Record{
			Date:   start.AddDate(0, 0, i),
			Status: attendance.StatusPresent,
		})
	}
	store.records["e1"] = records

	svc := NewService(store, nil, 1, t.TempDir())
	slip, err := svc.Generate(context.Background(), "e1", 6, 2025)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Pro-rata earnings halve; the fixed deduction does not.
	if slip.GrossEarnings != 11000 {
		t.Fatalf("gross = %v, want 11000", slip.GrossEarnings)
	}
	if slip.TotalDeductions != 1800 {
		t.Fatalf("deductions = %v, want 1800", slip.TotalDeductions)
	}
	if slip.NetSalary != 9200 {
		t.Fatalf("net = %v, want 9200", slip.NetSalary)
	}
}

func TestGenerateNoAttendanceWarnsAndReportsNegativeNet(t *testing.T) {
	store := newFakeStore()
	store.library = standardLibrary()
	store.profiles["e1"] = standardProfile()

	svc := NewService(store, nil, 1, t.TempDir())
	slip, err := svc.Generate(context.Background(), "e1", 6, 2025)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if slip.NetSalary != -1800 {
		t.Fatalf("net = %v, want -1800", slip.NetSalary)
	}
	if !hasWarning(slip, WarningNoAttendance) {
		t.Fatalf("missing %q warning: %v", WarningNoAttendance, slip.Warnings)
	}
	if !hasWarning(slip, WarningNegativeNet) {
		t.Fatalf("missing %q warning: %v", WarningNegativeNet, slip.Warnings)
	}
}

func TestGenerateOverwritesSamePeriod(t *testing.T) {
	store := newFakeStore()
	store.library = standardLibrary()
	store.profiles["e1"] = standardProfile()
	store.records["e1"] = fullMonthPresent(6, 2025)

	svc := NewService(store, nil, 1, t.TempDir())
	first, err := svc.Generate(context.Background(), "e1", 6, 2025)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	second, err := svc.Generate(context.Background(), "e1", 6, 2025)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("regeneration created a new payslip: %s vs %s", first.ID, second.ID)
	}
	if len(store.slips) != 1 {
		t.Fatalf("stored payslips = %d, want 1", len(store.slips))
	}
}

func TestGenerateInvalidatesRenderedPDF(t *testing.T) {
	store := newFakeStore()
	store.library = standardLibrary()
	store.profiles["e1"] = standardProfile()
	store.records["e1"] = fullMonthPresent(6, 2025)

	svc := NewService(store, nil, 1, t.TempDir())
	if _, err := svc.Generate(context.Background(), "e1", 6, 2025); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	first, err := svc.RenderPayslipPDF(context.Background(), "e1", 6, 2025)
	if err != nil {
		t.Fatalf("RenderPayslipPDF: %v", err)
	}
	if first == "" {
		t.Fatal("expected a rendered file path")
	}

	// Amounts change, the period is regenerated: the old file must not
	// survive as the cached download.
	store.records["e1"] = store.records["e1"][:15]
	if _, err := svc.Generate(context.Background(), "e1", 6, 2025); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	slip, err := svc.Get(context.Background(), "e1", 6, 2025)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if slip.FileURL != "" {
		t.Fatalf("file url survived regeneration: %q", slip.FileURL)
	}
	if _, err := svc.RenderPayslipPDF(context.Background(), "e1", 6, 2025); err != nil {
		t.Fatalf("re-render after regeneration: %v", err)
	}
}

func TestGenerateNoProfile(t *testing.T) {
	store := newFakeStore()
	store.library = standardLibrary()

	svc := NewService(store, nil, 1, t.TempDir())
	if _, err := svc.Generate(context.Background(), "ghost", 6, 2025); err != salary.ErrProfileNotFound {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func hasWarning(slip Payslip, warning string) bool {
	for _, w := range slip.Warnings {
		if w == warning {
			return true
		}
	}
	return false
}
