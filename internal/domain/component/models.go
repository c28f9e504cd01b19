package component

import (
	"strings"
	"time"
)

const (
	CategoryEarning   = "earning"
	CategoryDeduction = "deduction"
)

// Definition is one reusable salary component in the library.
type Definition struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	ProRata       bool      `json:"proRata"`
	IsBasicSalary bool      `json:"isBasicSalary"`
	CreatedAt     time.Time `json:"createdAt"`
}

// IsBasicName reports whether a component name identifies the Basic
// Salary component under the legacy naming contract.
func IsBasicName(name string) bool {
	return strings.Contains(strings.ToLower(name), "basic")
}

// IsBasic prefers the explicit flag and falls back to the name match so
// libraries created before the flag existed keep resolving.
func (d Definition) IsBasic() bool {
	return d.IsBasicSalary || IsBasicName(d.Name)
}

func ValidCategory(category string) bool {
	return category == CategoryEarning || category == CategoryDeduction
}
