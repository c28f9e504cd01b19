package salary

import (
	"errors"
	"testing"

	"hrpay/internal/domain/component"
)

func testLibrary() map[string]component.Definition {
	return map[string]component.Definition{
		"c-basic": {ID: "c-basic", Name: "Basic Salary", Category: component.CategoryEarning, ProRata: true, IsBasicSalary: true},
		"c-hra":   {ID: "c-hra", Name: "House Rent Allowance", Category: component.CategoryEarning, ProRata: true},
		"c-conv":  {ID: "c-conv", Name: "Conveyance", Category: component.CategoryEarning},
		"c-pf":    {ID: "c-pf", Name: "Provident Fund", Category: component.CategoryDeduction},
	}
}

func TestResolvePercentageFromBasic(t *testing.T) {
	assigned := []Assigned{
		{ComponentID: "c-basic", CalcType: CalcTypeFixed, Value: 20000},
		{ComponentID: "c-hra", CalcType: CalcTypePercentage, Value: 10},
	}

	resolved, err := Resolve(assigned, testLibrary())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved components, got %d", len(resolved))
	}
	for _, item := range resolved {
		switch item.ComponentID {
		case "c-basic":
			if item.Amount != 20000 {
				t.Fatalf("expected basic 20000, got %v", item.Amount)
			}
		case "c-hra":
			if item.Amount != 2000 {
				t.Fatalf("expected hra 2000, got %v", item.Amount)
			}
			if item.Category != component.CategoryEarning {
				t.Fatalf("expected earning category, got %q", item.Category)
			}
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	assigned := []Assigned{
		{ComponentID: "c-basic", CalcType: CalcTypeFixed, Value: 31337.37},
		{ComponentID: "c-hra", CalcType: CalcTypePercentage, Value: 42.5},
		{ComponentID: "c-pf", CalcType: CalcTypePercentage, Value: 12},
	}

	first, err := Resolve(assigned, testLibrary())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	second, err := Resolve(assigned, testLibrary())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	for i := range first {
		if first[i].Amount != second[i].Amount {
			t.Fatalf("amounts drifted between runs: %v vs %v", first[i].Amount, second[i].Amount)
		}
	}
}

func TestResolveMissingBasic(t *testing.T) {
	assigned := []Assigned{
		{ComponentID: "c-hra", CalcType: CalcTypePercentage, Value: 40},
	}

	_, err := Resolve(assigned, testLibrary())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestResolveNonPositiveBasic(t *testing.T) {
	assigned := []Assigned{
		{ComponentID: "c-basic", CalcType: CalcTypeFixed, Value: 0},
	}

	_, err := Resolve(assigned, testLibrary())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestResolvePercentageBasicRejected(t *testing.T) {
	assigned := []Assigned{
		{ComponentID: "c-basic", CalcType: CalcTypePercentage, Value: 50},
	}

	_, err := Resolve(assigned, testLibrary())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestResolvePercentageOutOfRange(t *testing.T) {
	assigned := []Assigned{
		{ComponentID: "c-basic", CalcType: CalcTypeFixed, Value: 10000},
		{ComponentID: "c-hra", CalcType: CalcTypePercentage, Value: 120},
	}

	_, err := Resolve(assigned, testLibrary())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestResolveUnknownComponent(t *testing.T) {
	assigned := []Assigned{
		{ComponentID: "c-basic", CalcType: CalcTypeFixed, Value: 10000},
		{ComponentID: "c-ghost", CalcType: CalcTypeFixed, Value: 500},
	}

	_, err := Resolve(assigned, testLibrary())
	var rerr *ReferenceError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if rerr.ComponentID != "c-ghost" {
		t.Fatalf("expected c-ghost in error, got %q", rerr.ComponentID)
	}
}

func TestResolveDuplicateAssignment(t *testing.T) {
	assigned := []Assigned{
		{ComponentID: "c-basic", CalcType: CalcTypeFixed, Value: 10000},
		{ComponentID: "c-conv", CalcType: CalcTypeFixed, Value: 800},
		{ComponentID: "c-conv", CalcType: CalcTypeFixed, Value: 900},
	}

	_, err := Resolve(assigned, testLibrary())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestResolveProRataOverride(t *testing.T) {
	override := false
	assigned := []Assigned{
		{ComponentID: "c-basic", CalcType: CalcTypeFixed, Value: 10000},
		{ComponentID: "c-hra", CalcType: CalcTypePercentage, Value: 40, ProRated: &override},
	}

	resolved, err := Resolve(assigned, testLibrary())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	for _, item := range resolved {
		if item.ComponentID == "c-hra" && item.ProRata {
			t.Fatal("expected pro-rata override to false")
		}
	}
}

func TestResolveBasicByNameFallback(t *testing.T) {
	library := testLibrary()
	def := library["c-basic"]
	def.IsBasicSalary = false
	library["c-basic"] = def

	assigned := []Assigned{
		{ComponentID: "c-basic", CalcType: CalcTypeFixed, Value: 15000},
		{ComponentID: "c-hra", CalcType: CalcTypePercentage, Value: 20},
	}

	resolved, err := Resolve(assigned, library)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	for _, item := range resolved {
		if item.ComponentID == "c-hra" && item.Amount != 3000 {
			t.Fatalf("expected hra 3000, got %v", item.Amount)
		}
	}
}
