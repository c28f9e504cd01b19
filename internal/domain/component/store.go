package component

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Definition, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, category, pro_rata, is_basic_salary, created_at
    FROM salary_components
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []Definition
	for rows.Next() {
		var def Definition
		if err := rows.Scan(&def.ID, &def.Name, &def.Category, &def.ProRata, &def.IsBasicSalary, &def.CreatedAt); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

// Library returns the component definitions keyed by id, the shape the
// resolver consumes.
func (s *Store) Library(ctx context.Context) (map[string]Definition, error) {
	defs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	library := make(map[string]Definition, len(defs))
	for _, def := range defs {
		library[def.ID] = def
	}
	return library, nil
}

func (s *Store) Get(ctx context.Context, id string) (Definition, error) {
	var def Definition
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, category, pro_rata, is_basic_salary, created_at
    FROM salary_components
    WHERE id = $1
  `, id).Scan(&def.ID, &def.Name, &def.Category, &def.ProRata, &def.IsBasicSalary, &def.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Definition{}, ErrNotFound
	}
	if err != nil {
		return Definition{}, err
	}
	return def, nil
}

func (s *Store) Create(ctx context.Context, name, category string, proRata, isBasicSalary bool) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO salary_components (name, category, pro_rata, is_basic_salary)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, name, category, proRata, isBasicSalary).Scan(&id)
	if isUniqueViolation(err) {
		return "", ErrDuplicateName
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, id, name, category string, proRata, isBasicSalary bool) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE salary_components
    SET name = $1, category = $2, pro_rata = $3, is_basic_salary = $4
    WHERE id = $5
  `, name, category, proRata, isBasicSalary, id)
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete refuses to remove a component that any salary profile still
// references.
func (s *Store) Delete(ctx context.Context, id string) error {
	var refs int
	if err := s.DB.QueryRow(ctx,
		"SELECT COUNT(1) FROM employee_salary_components WHERE component_id = $1", id,
	).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return ErrInUse
	}

	tag, err := s.DB.Exec(ctx, "DELETE FROM salary_components WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
