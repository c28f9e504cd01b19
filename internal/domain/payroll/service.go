package payroll

import (
	"context"
	"time"

	"hrpay/internal/domain/attendance"
	"hrpay/internal/domain/salary"
	"hrpay/internal/platform/metrics"
)

type Service struct {
	Store   StoreAPI
	Metrics *metrics.Collector
	Workers int
	Dir     string
}

func NewService(store StoreAPI, collector *metrics.Collector, workers int, dir string) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{Store: store, Metrics: collector, Workers: workers, Dir: dir}
}

// Generate computes and persists the payslip for one employee and
// period. Re-running the same period overwrites the stored payslip.
func (s *Service) Generate(ctx context.Context, employeeID string, month, year int) (Payslip, error) {
	slip, err := s.generate(ctx, employeeID, month, year)
	if s.Metrics != nil {
		s.Metrics.RecordPayslip(err != nil)
	}
	return slip, err
}

func (s *Service) generate(ctx context.Context, employeeID string, month, year int) (Payslip, error) {
	assigned, err := s.Store.SalaryProfile(ctx, employeeID)
	if err != nil {
		return Payslip{}, err
	}
	library, err := s.Store.ComponentLibrary(ctx)
	if err != nil {
		return Payslip{}, err
	}
	resolved, err := salary.Resolve(assigned, library)
	if err != nil {
		return Payslip{}, err
	}

	start, end := attendance.MonthRange(month, year)
	records, err := s.Store.AttendanceRecords(ctx, employeeID, start, end)
	if err != nil {
		return Payslip{}, err
	}
	summary := attendance.Aggregate(records, start, end)

	lines, gross, deductions, net := Compute(resolved, summary)

	var warnings []string
	if len(records) == 0 {
		warnings = append(warnings, WarningNoAttendance)
	}
	if net < 0 {
		warnings = append(warnings, WarningNegativeNet)
	}

	slip := Payslip{
		EmployeeID:      employeeID,
		Month:           month,
		Year:            year,
		Components:      lines,
		GrossEarnings:   gross,
		TotalDeductions: deductions,
		NetSalary:       net,
		Breakdown:       breakdownFrom(summary),
		Warnings:        warnings,
	}
	if err := s.Store.UpsertPayslip(ctx, &slip); err != nil {
		return Payslip{}, err
	}
	return slip, nil
}

func (s *Service) Get(ctx context.Context, employeeID string, month, year int) (Payslip, error) {
	return s.Store.GetPayslip(ctx, employeeID, month, year)
}

func (s *Service) List(ctx context.Context, employeeID string, limit, offset int) ([]Payslip, error) {
	return s.Store.ListPayslips(ctx, employeeID, limit, offset)
}

// RenderPayslipPDF writes the PDF for a stored payslip and records its
// location, generating it on first request.
func (s *Service) RenderPayslipPDF(ctx context.Context, employeeID string, month, year int) (string, error) {
	slip, err := s.Store.GetPayslip(ctx, employeeID, month, year)
	if err != nil {
		return "", err
	}
	if slip.FileURL != "" {
		return slip.FileURL, nil
	}
	name, err := s.Store.EmployeeName(ctx, employeeID)
	if err != nil {
		return "", err
	}
	path, err := RenderPDF(slip, name, s.Dir)
	if err != nil {
		return "", err
	}
	if err := s.Store.UpdatePayslipFileURL(ctx, slip.ID, path); err != nil {
		return "", err
	}
	return path, nil
}

func monthLabel(month, year int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
