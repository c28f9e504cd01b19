package salary

const (
	CalcTypeFixed      = "fixed"
	CalcTypePercentage = "percentage"
)

// Assigned is one component attached to an employee's salary profile.
// ProRated nil means the assignment inherits the definition's pro-rata
// flag; a non-nil value overrides it.
type Assigned struct {
	ComponentID string  `json:"componentId"`
	CalcType    string  `json:"calcType"`
	Value       float64 `json:"value"`
	ProRated    *bool   `json:"proRated,omitempty"`
}

// Resolved is a component with its monetary amount fully computed.
type Resolved struct {
	ComponentID string  `json:"componentId"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	ProRata     bool    `json:"proRata"`
}

func ValidCalcType(calcType string) bool {
	return calcType == CalcTypeFixed || calcType == CalcTypePercentage
}
