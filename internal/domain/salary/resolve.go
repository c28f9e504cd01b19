package salary

import (
	"hrpay/internal/domain/component"
	"hrpay/internal/platform/money"
)

// Resolve computes the monetary amount of every assigned component.
//
// The Basic Salary component is located and validated first so that
// percentage components always derive from the current basic value.
// Basic itself must be fixed, which rules out a circular dependency.
func Resolve(assigned []Assigned, library map[string]component.Definition) ([]Resolved, error) {
	if len(assigned) == 0 {
		return nil, &ValidationError{Reason: "salary profile has no components"}
	}

	seen := make(map[string]bool, len(assigned))
	for _, item := range assigned {
		if seen[item.ComponentID] {
			def, ok := library[item.ComponentID]
			name := item.ComponentID
			if ok {
				name = def.Name
			}
			return nil, &ValidationError{Reason: "component " + name + " assigned more than once"}
		}
		seen[item.ComponentID] = true
	}

	basic, err := findBasic(assigned, library)
	if err != nil {
		return nil, err
	}
	basicSalary := basic.Value

	resolved := make([]Resolved, 0, len(assigned))
	for _, item := range assigned {
		def, ok := library[item.ComponentID]
		if !ok {
			return nil, &ReferenceError{ComponentID: item.ComponentID}
		}

		var amount float64
		switch item.CalcType {
		case CalcTypeFixed:
			amount = money.Round2(item.Value)
		case CalcTypePercentage:
			if item.Value < 0 || item.Value > 100 {
				return nil, &ValidationError{Reason: "percentage value for " + def.Name + " must be between 0 and 100"}
			}
			amount = money.PercentOf(basicSalary, item.Value)
		default:
			return nil, &ValidationError{Reason: "unknown calculation type " + item.CalcType + " for " + def.Name}
		}

		proRata := def.ProRata
		if item.ProRated != nil {
			proRata = *item.ProRated
		}

		resolved = append(resolved, Resolved{
			ComponentID: item.ComponentID,
			Name:        def.Name,
			Category:    def.Category,
			Amount:      amount,
			ProRata:     proRata,
		})
	}
	return resolved, nil
}

func findBasic(assigned []Assigned, library map[string]component.Definition) (Assigned, error) {
	for _, item := range assigned {
		def, ok := library[item.ComponentID]
		if !ok {
			continue
		}
		if !def.IsBasic() {
			continue
		}
		if item.CalcType != CalcTypeFixed {
			return Assigned{}, &ValidationError{Reason: "Basic Salary component must use fixed calculation"}
		}
		if item.Value <= 0 {
			return Assigned{}, &ValidationError{Reason: "Basic Salary must be greater than zero"}
		}
		return item, nil
	}
	return Assigned{}, &ValidationError{Reason: "Basic Salary component missing or not fixed"}
}
