package payroll

import (
	"errors"
	"fmt"
)

var ErrPayslipNotFound = errors.New("payslip not found")

// EmployeeError records one employee's failure inside a bulk run.
type EmployeeError struct {
	EmployeeID string `json:"employeeId"`
	Message    string `json:"error"`
}

// PartialBatchError reports a bulk run where at least one employee
// failed. Successes are still delivered alongside it.
type PartialBatchError struct {
	Failures []EmployeeError
}

func (e *PartialBatchError) Error() string {
	return fmt.Sprintf("bulk payroll run: %d employee(s) failed", len(e.Failures))
}
