package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ListRange returns an employee's records for [start, end], joining the
// paid/unpaid category from the originating leave request.
func (s *Store) ListRange(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT ar.id, ar.day, ar.status, ar.check_in, ar.check_out,
           COALESCE(lt.is_paid, false)
    FROM attendance_records ar
    LEFT JOIN leave_requests lr ON ar.leave_request_id = lr.id
    LEFT JOIN leave_types lt ON lr.leave_type_id = lt.id
    WHERE ar.employee_id = $1 AND ar.day >= $2 AND ar.day <= $3
    ORDER BY ar.day
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.Date, &record.Status, &record.CheckIn, &record.CheckOut, &record.LeavePaid); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) HasCheckedIn(ctx context.Context, employeeID string, day time.Time) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM attendance_records
    WHERE employee_id = $1 AND day = $2 AND check_in IS NOT NULL
  `, employeeID, day).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreateCheckIn(ctx context.Context, employeeID string, day time.Time, at time.Time) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO attendance_records (employee_id, day, status, check_in)
    VALUES ($1,$2,$3,$4)
    ON CONFLICT (employee_id, day)
    DO UPDATE SET status = EXCLUDED.status, check_in = EXCLUDED.check_in
    RETURNING id
  `, employeeID, day, StatusPresent, at).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) SetCheckOut(ctx context.Context, employeeID string, day time.Time, at time.Time) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE attendance_records SET check_out = $1
    WHERE employee_id = $2 AND day = $3 AND check_in IS NOT NULL
  `, at, employeeID, day)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoCheckIn
	}
	return nil
}

// MarkDay lets HR set a day's status directly (holiday, leave, absence).
func (s *Store) MarkDay(ctx context.Context, employeeID string, day time.Time, status string, leaveRequestID *string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO attendance_records (employee_id, day, status, leave_request_id)
    VALUES ($1,$2,$3,$4)
    ON CONFLICT (employee_id, day)
    DO UPDATE SET status = EXCLUDED.status, leave_request_id = EXCLUDED.leave_request_id
  `, employeeID, day, status, leaveRequestID)
	return err
}

func (s *Store) GetDay(ctx context.Context, employeeID string, day time.Time) (Record, error) {
	var record Record
	err := s.DB.QueryRow(ctx, `
    SELECT ar.id, ar.day, ar.status, ar.check_in, ar.check_out,
           COALESCE(lt.is_paid, false)
    FROM attendance_records ar
    LEFT JOIN leave_requests lr ON ar.leave_request_id = lr.id
    LEFT JOIN leave_types lt ON lr.leave_type_id = lt.id
    WHERE ar.employee_id = $1 AND ar.day = $2
  `, employeeID, day).Scan(&record.ID, &record.Date, &record.Status, &record.CheckIn, &record.CheckOut, &record.LeavePaid)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{Date: day, Status: StatusAbsent}, nil
	}
	if err != nil {
		return Record{}, err
	}
	return record, nil
}
