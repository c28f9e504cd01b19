package salary

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) GetProfile(ctx context.Context, employeeID string) ([]Assigned, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT component_id, calc_type, value, pro_rated
    FROM employee_salary_components
    WHERE employee_id = $1
    ORDER BY created_at
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assigned []Assigned
	for rows.Next() {
		var item Assigned
		if err := rows.Scan(&item.ComponentID, &item.CalcType, &item.Value, &item.ProRated); err != nil {
			return nil, err
		}
		assigned = append(assigned, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(assigned) == 0 {
		return nil, ErrProfileNotFound
	}
	return assigned, nil
}

// ReplaceProfile swaps an employee's full profile in one transaction.
// Profiles are saved whole, never patched component by component.
func (s *Store) ReplaceProfile(ctx context.Context, employeeID string, assigned []Assigned) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		"DELETE FROM employee_salary_components WHERE employee_id = $1", employeeID,
	); err != nil {
		return err
	}

	for _, item := range assigned {
		if _, err := tx.Exec(ctx, `
      INSERT INTO employee_salary_components (employee_id, component_id, calc_type, value, pro_rated)
      VALUES ($1,$2,$3,$4,$5)
    `, employeeID, item.ComponentID, item.CalcType, item.Value, item.ProRated); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
