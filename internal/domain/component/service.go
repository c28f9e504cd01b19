package component

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]Definition, error) {
	return s.store.List(ctx)
}

func (s *Service) Library(ctx context.Context) (map[string]Definition, error) {
	return s.store.Library(ctx)
}

func (s *Service) Create(ctx context.Context, name, category string, proRata bool) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("component name is required")
	}
	if !ValidCategory(category) {
		return "", fmt.Errorf("component category must be %q or %q", CategoryEarning, CategoryDeduction)
	}
	return s.store.Create(ctx, name, category, proRata, IsBasicName(name))
}

func (s *Service) Update(ctx context.Context, id, name, category string, proRata bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("component name is required")
	}
	if !ValidCategory(category) {
		return fmt.Errorf("component category must be %q or %q", CategoryEarning, CategoryDeduction)
	}
	return s.store.Update(ctx, id, name, category, proRata, IsBasicName(name))
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
