package employee

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID            string     `json:"id"`
	UserID        *string    `json:"userId,omitempty"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	DateOfJoining *time.Time `json:"dateOfJoining,omitempty"`
	Experience    string     `json:"experience"`
	Salary        *float64   `json:"salary,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
