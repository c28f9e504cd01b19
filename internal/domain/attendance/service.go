package attendance

import (
	"context"
	"time"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) CheckIn(ctx context.Context, employeeID string, at time.Time) (string, error) {
	day := startOfDay(at.UTC())
	checkedIn, err := s.store.HasCheckedIn(ctx, employeeID, day)
	if err != nil {
		return "", err
	}
	if checkedIn {
		return "", ErrAlreadyCheckedIn
	}
	return s.store.CreateCheckIn(ctx, employeeID, day, at.UTC())
}

func (s *Service) CheckOut(ctx context.Context, employeeID string, at time.Time) error {
	day := startOfDay(at.UTC())
	return s.store.SetCheckOut(ctx, employeeID, day, at.UTC())
}

func (s *Service) MarkDay(ctx context.Context, employeeID string, day time.Time, status string, leaveRequestID *string) error {
	return s.store.MarkDay(ctx, employeeID, startOfDay(day), status, leaveRequestID)
}

func (s *Service) ListRange(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error) {
	return s.store.ListRange(ctx, employeeID, start, end)
}

// Summarize aggregates an employee's attendance over a date range.
func (s *Service) Summarize(ctx context.Context, employeeID string, start, end time.Time) (Summary, error) {
	records, err := s.store.ListRange(ctx, employeeID, start, end)
	if err != nil {
		return Summary{}, err
	}
	return Aggregate(records, start, end), nil
}

// SummarizeMonth aggregates one full calendar month.
func (s *Service) SummarizeMonth(ctx context.Context, employeeID string, month, year int) (Summary, error) {
	start, end := MonthRange(month, year)
	return s.Summarize(ctx, employeeID, start, end)
}
