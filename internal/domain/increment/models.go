package increment

import "time"

// Candidate is the employee view the evaluator consumes: joining date
// for tenure, the free-form experience string, and the current salary.
type Candidate struct {
	EmployeeID    string
	Name          string
	DateOfJoining time.Time
	Experience    string
	Salary        float64
}

// TaskRating is one completed task's score, used for the trailing
// 180-day performance average.
type TaskRating struct {
	CompletedAt time.Time `json:"completedAt"`
	Rating      float64   `json:"rating"`
}

// EligibleEmployee is a salary increment recommendation. TaskMerged
// guards the one-shot merge of the performance percent on top of the
// tenure percent.
type EligibleEmployee struct {
	EmployeeID    string  `json:"employeeId"`
	Name          string  `json:"name"`
	Years         int     `json:"years"`
	Salary        float64 `json:"salary"`
	Percent       float64 `json:"percent"`
	Amount        float64 `json:"amount"`
	NewSalary     float64 `json:"newSalary"`
	AverageRating float64 `json:"averageRating,omitempty"`
	TaskMerged    bool    `json:"taskMerged,omitempty"`
}
