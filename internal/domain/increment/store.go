package increment

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ListCandidates loads active employees that carry both a joining date
// and a current salary; rows missing either cannot be evaluated.
func (s *Store) ListCandidates(ctx context.Context) ([]Candidate, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, first_name || ' ' || last_name, date_of_joining, COALESCE(experience, ''), salary
    FROM employees
    WHERE status = 'active' AND date_of_joining IS NOT NULL AND salary IS NOT NULL
    ORDER BY date_of_joining
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var candidate Candidate
		if err := rows.Scan(&candidate.EmployeeID, &candidate.Name, &candidate.DateOfJoining, &candidate.Experience, &candidate.Salary); err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}

// TaskRatings loads every rating completed on or after cutoff, grouped
// by employee.
func (s *Store) TaskRatings(ctx context.Context, cutoff time.Time) (map[string][]TaskRating, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, completed_at, rating
    FROM task_ratings
    WHERE completed_at >= $1
  `, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := map[string][]TaskRating{}
	for rows.Next() {
		var employeeID string
		var rating TaskRating
		if err := rows.Scan(&employeeID, &rating.CompletedAt, &rating.Rating); err != nil {
			return nil, err
		}
		ratings[employeeID] = append(ratings[employeeID], rating)
	}
	return ratings, rows.Err()
}
