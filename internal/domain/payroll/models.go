package payroll

import "time"

// ComponentLine is one resolved, post-proration amount on a payslip.
type ComponentLine struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Breakdown exposes the attendance inputs behind the payslip so the
// caller can audit the proration.
type Breakdown struct {
	PresentDays     int `json:"presentDays"`
	AbsentDays      int `json:"absentDays"`
	HalfDays        int `json:"halfDays"`
	UnpaidLeaveDays int `json:"unpaidLeaveDays"`
}

// Payslip is keyed (employee, month, year); regeneration overwrites.
type Payslip struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employeeId"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	Components      []ComponentLine `json:"components"`
	GrossEarnings   float64         `json:"grossEarnings"`
	TotalDeductions float64         `json:"totalDeductions"`
	NetSalary       float64         `json:"netSalary"`
	Breakdown       Breakdown       `json:"breakdown"`
	Warnings        []string        `json:"warnings,omitempty"`
	FileURL         string          `json:"fileUrl,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// BulkResult carries every outcome of a bulk run: successes and
// per-employee failures side by side.
type BulkResult struct {
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	Payslips []Payslip       `json:"payslips"`
	Failures []EmployeeError `json:"failures,omitempty"`
}
