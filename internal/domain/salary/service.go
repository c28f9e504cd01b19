package salary

import (
	"context"

	"hrpay/internal/domain/component"
)

type Service struct {
	store      *Store
	components *component.Service
}

func NewService(store *Store, components *component.Service) *Service {
	return &Service{store: store, components: components}
}

func (s *Service) GetProfile(ctx context.Context, employeeID string) ([]Assigned, error) {
	return s.store.GetProfile(ctx, employeeID)
}

// ResolveProfile returns the employee's components with amounts computed
// against the current library.
func (s *Service) ResolveProfile(ctx context.Context, employeeID string) ([]Resolved, error) {
	assigned, err := s.store.GetProfile(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	library, err := s.components.Library(ctx)
	if err != nil {
		return nil, err
	}
	return Resolve(assigned, library)
}

// SaveProfile validates by resolving against the current library before
// persisting, so an invalid profile is never stored.
func (s *Service) SaveProfile(ctx context.Context, employeeID string, assigned []Assigned) ([]Resolved, error) {
	for _, item := range assigned {
		if !ValidCalcType(item.CalcType) {
			return nil, &ValidationError{Reason: "unknown calculation type " + item.CalcType}
		}
	}

	library, err := s.components.Library(ctx)
	if err != nil {
		return nil, err
	}
	resolved, err := Resolve(assigned, library)
	if err != nil {
		return nil, err
	}

	if err := s.store.ReplaceProfile(ctx, employeeID, assigned); err != nil {
		return nil, err
	}
	return resolved, nil
}
