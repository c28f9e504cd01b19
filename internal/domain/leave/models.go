package leave

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Type struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsPaid bool   `json:"isPaid"`
}

type Request struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	LeaveTypeID string    `json:"leaveTypeId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Status      string    `json:"status"`
}

// Balance tracks entitlement per employee, leave type and year. The
// used <= total invariant is enforced by the approval workflow; payroll
// only reads balances for unpaid-day classification.
type Balance struct {
	EmployeeID  string  `json:"employeeId"`
	LeaveTypeID string  `json:"leaveTypeId"`
	Year        int     `json:"year"`
	Total       float64 `json:"total"`
	Used        float64 `json:"used"`
}
