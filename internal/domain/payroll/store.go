package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrpay/internal/domain/attendance"
	"hrpay/internal/domain/component"
	"hrpay/internal/domain/salary"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ComponentLibrary(ctx context.Context) (map[string]component.Definition, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, category, pro_rata, is_basic_salary, created_at
    FROM salary_components
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	library := map[string]component.Definition{}
	for rows.Next() {
		var def component.Definition
		if err := rows.Scan(&def.ID, &def.Name, &def.Category, &def.ProRata, &def.IsBasicSalary, &def.CreatedAt); err != nil {
			return nil, err
		}
		library[def.ID] = def
	}
	return library, rows.Err()
}

func (s *Store) SalaryProfile(ctx context.Context, employeeID string) ([]salary.Assigned, error) {
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

	var assigned []salary.Assigned
	for rows.Next() {
		var item salary.Assigned
		if err := rows.Scan(&item.ComponentID, &item.CalcType, &item.Value, &item.ProRated); err != nil {
			return nil, err
		}
		assigned = append(assigned, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(assigned) == 0 {
		return nil, salary.ErrProfileNotFound
	}
	return assigned, nil
}

func (s *Store) AttendanceRecords(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT ar.id, ar.day, ar.status, ar.check_in, ar.check_out,
           COALESCE(lt.is_paid, false)
    FROM attendance_records ar
    LEFT JOIN leave_requests lr ON ar.leave_request_id = lr.id
    LEFT JOIN leave_types lt ON lr.leave_type_id = lt.id
    WHERE ar.employee_id = $1 AND ar.day >= $2 AND ar.day <= $3
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var record attendance.Record
		if err := rows.Scan(&record.ID, &record.Date, &record.Status, &record.CheckIn, &record.CheckOut, &record.LeavePaid); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) ListActiveEmployeeIDs(ctx context.Context) ([]string, error) {
	rows, err := s.DB.Query(ctx, "SELECT id FROM employees WHERE status = 'active' ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) EmployeeName(ctx context.Context, employeeID string) (string, error) {
	var first, last string
	if err := s.DB.QueryRow(ctx,
		"SELECT first_name, last_name FROM employees WHERE id = $1", employeeID,
	).Scan(&first, &last); err != nil {
		return "", err
	}
	return first + " " + last, nil
}

func (s *Store) UpsertPayslip(ctx context.Context, slip *Payslip) error {
	componentsJSON, err := json.Marshal(slip.Components)
	if err != nil {
		return err
	}
	warningsJSON, err := json.Marshal(slip.Warnings)
	if err != nil {
		return err
	}

	return s.DB.QueryRow(ctx, `
    INSERT INTO payslips (employee_id, month, year, components_json, gross, deductions, net,
                          present_days, absent_days, half_days, unpaid_leave_days, warnings_json)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    ON CONFLICT (employee_id, month, year)
    DO UPDATE SET components_json = EXCLUDED.components_json,
                  gross = EXCLUDED.gross,
                  deductions = EXCLUDED.deductions,
                  net = EXCLUDED.net,
                  present_days = EXCLUDED.present_days,
                  absent_days = EXCLUDED.absent_days,
                  half_days = EXCLUDED.half_days,
                  unpaid_leave_days = EXCLUDED.unpaid_leave_days,
                  warnings_json = EXCLUDED.warnings_json,
                  file_url = NULL,
                  created_at = now()
    RETURNING id, created_at
  `, slip.EmployeeID, slip.Month, slip.Year, componentsJSON,
		slip.GrossEarnings, slip.TotalDeductions, slip.NetSalary,
		slip.Breakdown.PresentDays, slip.Breakdown.AbsentDays,
		slip.Breakdown.HalfDays, slip.Breakdown.UnpaidLeaveDays,
		warningsJSON).Scan(&slip.ID, &slip.CreatedAt)
}

func (s *Store) GetPayslip(ctx context.Context, employeeID string, month, year int) (Payslip, error) {
	slip, err := scanPayslip(s.DB.QueryRow(ctx, `
    SELECT id, employee_id, month, year, components_json, gross, deductions, net,
           present_days, absent_days, half_days, unpaid_leave_days, warnings_json,
           COALESCE(file_url, ''), created_at
    FROM payslips
    WHERE employee_id = $1 AND month = $2 AND year = $3
  `, employeeID, month, year))
	if errors.Is(err, pgx.ErrNoRows) {
		return Payslip{}, ErrPayslipNotFound
	}
	return slip, err
}

func (s *Store) ListPayslips(ctx context.Context, employeeID string, limit, offset int) ([]Payslip, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, month, year, components_json, gross, deductions, net,
           present_days, absent_days, half_days, unpaid_leave_days, warnings_json,
           COALESCE(file_url, ''), created_at
    FROM payslips
    WHERE employee_id = $1
    ORDER BY year DESC, month DESC
    LIMIT $2 OFFSET $3
  `, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slips []Payslip
	for rows.Next() {
		slip, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		slips = append(slips, slip)
	}
	return slips, rows.Err()
}

func (s *Store) UpdatePayslipFileURL(ctx context.Context, payslipID, fileURL string) error {
	_, err := s.DB.Exec(ctx, "UPDATE payslips SET file_url = $1 WHERE id = $2", fileURL, payslipID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayslip(row rowScanner) (Payslip, error) {
	var slip Payslip
	var componentsJSON, warningsJSON []byte
	err := row.Scan(&slip.ID, &slip.EmployeeID, &slip.Month, &slip.Year, &componentsJSON,
		&slip.GrossEarnings, &slip.TotalDeductions, &slip.NetSalary,
		&slip.Breakdown.PresentDays, &slip.Breakdown.AbsentDays,
		&slip.Breakdown.HalfDays, &slip.Breakdown.UnpaidLeaveDays,
		&warningsJSON, &slip.FileURL, &slip.CreatedAt)
	if err != nil {
		return Payslip{}, err
	}
	if err := json.Unmarshal(componentsJSON, &slip.Components); err != nil {
		slip.Components = nil
	}
	if err := json.Unmarshal(warningsJSON, &slip.Warnings); err != nil {
		slip.Warnings = nil
	}
	return slip, nil
}
