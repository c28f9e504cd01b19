package payroll

import (
	"context"
	"time"

	"hrpay/internal/domain/attendance"
	"hrpay/internal/domain/component"
	"hrpay/internal/domain/salary"
)

// StoreAPI is everything the generator reads and writes. The pgx Store
// implements it; tests substitute an in-memory fake.
type StoreAPI interface {
	ComponentLibrary(ctx context.Context) (map[string]component.Definition, error)
	SalaryProfile(ctx context.Context, employeeID string) ([]salary.Assigned, error)
	AttendanceRecords(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error)
	ListActiveEmployeeIDs(ctx context.Context) ([]string, error)
	EmployeeName(ctx context.Context, employeeID string) (string, error)
	// UpsertPayslip replaces the stored payslip for the period,
	// discarding any previously rendered file reference so stale PDFs
	// are never served after a regeneration.
	UpsertPayslip(ctx context.Context, slip *Payslip) error
	GetPayslip(ctx context.Context, employeeID string, month, year int) (Payslip, error)
	ListPayslips(ctx context.Context, employeeID string, limit, offset int) ([]Payslip, error)
	UpdatePayslipFileURL(ctx context.Context, payslipID, fileURL string) error
}
