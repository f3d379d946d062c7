package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, name, daily_wage, wage_change_date, previous_wage, created_at, updated_at
func scanEmployee(s scanner) (*employee.Employee, error) {
	var e employee.Employee

	var previous decimal.NullDecimal

	if err := s.Scan(
		&e.ID, &e.Name, &e.DailyWage, &e.WageChangeDate, &previous, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if previous.Valid {
		e.PreviousWage = &previous.Decimal
	}

	return &e, nil
}

const selectEmployeeColumns = `id, name, daily_wage, wage_change_date, previous_wage, created_at, updated_at`

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func (s *Store) CreateEmployee(ctx context.Context, e *employee.Employee) error {
	query := `
		INSERT INTO employees (name, daily_wage, wage_change_date, previous_wage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Name,
		e.DailyWage,
		e.WageChangeDate,
		nullDecimal(e.PreviousWage),
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating employee: %w", err)
	}

	return nil
}

func (s *Store) GetEmployee(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employee.ErrNotFound
		}

		return nil, fmt.Errorf("getting employee: %w", err)
	}

	return e, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]*employee.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + ` FROM employees ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*employee.Employee

	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}

		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employee rows: %w", err)
	}

	return employees, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, e *employee.Employee) error {
	query := `
		UPDATE employees
		SET name = $1, daily_wage = $2, wage_change_date = $3, previous_wage = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.Name,
		e.DailyWage,
		e.WageChangeDate,
		nullDecimal(e.PreviousWage),
		e.ID,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.ErrNotFound
		}

		return fmt.Errorf("updating employee: %w", err)
	}

	return nil
}

func (s *Store) HasWorkedDaysBefore(ctx context.Context, id uuid.UUID, date string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM work_days WHERE employee_id = $1 AND worked = TRUE AND date < $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking worked days: %w", err)
	}

	return exists, nil
}

// DeleteEmployee removes payments, work days and the employee in one transaction.
func (s *Store) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	cascade := []string{
		`DELETE FROM payment_work_days WHERE payment_id IN (SELECT id FROM payments WHERE employee_id = $1)`,
		`DELETE FROM payments WHERE employee_id = $1`,
		`DELETE FROM work_days WHERE employee_id = $1`,
	}
	for _, q := range cascade {
		if _, err := dbTx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("deleting employee records: %w", err)
		}
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return employee.ErrNotFound
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
