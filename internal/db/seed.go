package db

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrpay/internal/auth"
	"hrpay/internal/domain/component"
	"hrpay/internal/platform/config"
)

// starterComponents is the component library a fresh install begins
// with. HR can edit or delete these like any other component.
var starterComponents = []struct {
	Name          string
	Category      string
	ProRata       bool
	IsBasicSalary bool
}{
	{"Basic Salary", component.CategoryEarning, true, true},
	{"HRA", component.CategoryEarning, true, false},
	{"Conveyance Allowance", component.CategoryEarning, true, false},
	{"Provident Fund", component.CategoryDeduction, false, false},
	{"Professional Tax", component.CategoryDeduction, false, false},
}

var starterLeaveTypes = []struct {
	Name   string
	IsPaid bool
}{
	{"Casual Leave", true},
	{"Sick Leave", true},
	{"Leave Without Pay", false},
}

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		return err
	}
	if err := ensureComponents(ctx, pool); err != nil {
		return err
	}
	return ensureLeaveTypes(ctx, pool)
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil
	}

	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return pool.QueryRow(ctx,
		"INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id",
		email, hash, auth.RoleHR,
	).Scan(&id)
}

func ensureComponents(ctx context.Context, pool *pgxpool.Pool) error {
	for _, def := range starterComponents {
		_, err := pool.Exec(ctx, `
      INSERT INTO salary_components (name, category, pro_rata, is_basic_salary)
      VALUES ($1,$2,$3,$4)
      ON CONFLICT (name) DO NOTHING
    `, def.Name, def.Category, def.ProRata, def.IsBasicSalary)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureLeaveTypes(ctx context.Context, pool *pgxpool.Pool) error {
	for _, lt := range starterLeaveTypes {
		_, err := pool.Exec(ctx, `
      INSERT INTO leave_types (name, is_paid)
      VALUES ($1,$2)
      ON CONFLICT (name) DO NOTHING
    `, lt.Name, lt.IsPaid)
		if err != nil {
			return err
		}
	}
	return nil
}
