package increment

import (
	"context"
	"time"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// Evaluate returns the tenure-based recommendations as of today.
func (s *Service) Evaluate(ctx context.Context, today time.Time) ([]EligibleEmployee, error) {
	candidates, err := s.Store.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}
	return Evaluate(candidates, today), nil
}

// EvaluateWithRatings runs the tenure evaluation and merges the
// performance percent in one pass.
func (s *Service) EvaluateWithRatings(ctx context.Context, today time.Time) ([]EligibleEmployee, error) {
	eligible, err := s.Evaluate(ctx, today)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return eligible, nil
	}
	ratings, err := s.Store.TaskRatings(ctx, today.AddDate(0, 0, -ratingWindowDays))
	if err != nil {
		return nil, err
	}
	return MergeTaskRatings(eligible, ratings, today), nil
}
