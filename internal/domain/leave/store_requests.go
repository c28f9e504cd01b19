package leave

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

var ErrRequestNotFound = errors.New("leave request not found")

func (s *Store) CreateRequest(ctx context.Context, req Request) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, leave_type_id, start_date, end_date, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, req.EmployeeID, req.LeaveTypeID, req.StartDate, req.EndDate, StatusPending).Scan(&id)
	return id, err
}

func (s *Store) GetRequest(ctx context.Context, id string) (Request, error) {
	var req Request
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, leave_type_id, start_date, end_date, status
    FROM leave_requests
    WHERE id = $1
  `, id).Scan(&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.StartDate, &req.EndDate, &req.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrRequestNotFound
	}
	return req, err
}

func (s *Store) SetRequestStatus(ctx context.Context, id, status string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE leave_requests SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// AddUsage bumps the used counter on the employee's balance for the
// year, creating the row if the employee has no entitlement record yet.
func (s *Store) AddUsage(ctx context.Context, employeeID, leaveTypeID string, year int, days float64) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO leave_balances (employee_id, leave_type_id, year, total, used)
    VALUES ($1,$2,$3,0,$4)
    ON CONFLICT (employee_id, leave_type_id, year)
    DO UPDATE SET used = leave_balances.used + EXCLUDED.used
  `, employeeID, leaveTypeID, year, days)
	return err
}
