package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Expected column order: id, employee_id, date, worked, paid, custom_amount, notes, created_at, updated_at
func scanWorkDay(s scanner) (*workday.WorkDay, error) {
	var wd workday.WorkDay

	var custom decimal.NullDecimal

	if err := s.Scan(
		&wd.ID, &wd.EmployeeID, &wd.Date, &wd.Worked, &wd.Paid, &custom, &wd.Notes,
		&wd.CreatedAt, &wd.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if custom.Valid {
		wd.CustomAmount = &custom.Decimal
	}

	return &wd, nil
}

const selectWorkDayColumns = `id, employee_id, date, worked, paid, custom_amount, notes, created_at, updated_at`

const upsertWorkDayQuery = `
	INSERT INTO work_days (employee_id, date, worked, paid, custom_amount, notes, created_at, updated_at)
	VALUES ($1, $2, $3, FALSE, $4, $5, NOW(), NOW())
	ON CONFLICT (employee_id, date) DO UPDATE
	SET worked = EXCLUDED.worked, custom_amount = EXCLUDED.custom_amount, notes = EXCLUDED.notes, updated_at = NOW()
	WHERE work_days.paid = FALSE
	RETURNING id, paid, created_at, updated_at
`

func customAmount(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func upsert(ctx context.Context, q queryer, wd *workday.WorkDay) error {
	err := q.QueryRowContext(ctx, upsertWorkDayQuery,
		wd.EmployeeID,
		wd.Date,
		wd.Worked,
		customAmount(wd.CustomAmount),
		wd.Notes,
	).Scan(&wd.ID, &wd.Paid, &wd.CreatedAt, &wd.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// The conflicting row is paid, so the update was skipped.
		return fmt.Errorf("%w: %s", workday.ErrPaid, wd.Date)
	}

	if err != nil {
		return fmt.Errorf("upserting work day: %w", err)
	}

	return nil
}

func (s *Store) UpsertWorkDay(ctx context.Context, wd *workday.WorkDay) error {
	return upsert(ctx, s.db, wd)
}

func (s *Store) GetWorkDay(ctx context.Context, id uuid.UUID) (*workday.WorkDay, error) {
	query := `SELECT ` + selectWorkDayColumns + ` FROM work_days WHERE id = $1`

	wd, err := scanWorkDay(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, workday.ErrNotFound
		}

		return nil, fmt.Errorf("getting work day: %w", err)
	}

	return wd, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}

func (s *Store) ListWorkDays(ctx context.Context, filter workday.ListFilter) ([]*workday.WorkDay, error) {
	query := `SELECT ` + selectWorkDayColumns + ` FROM work_days WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND employee_id = $%d", argIdx)

		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.IDs != nil {
		query += fmt.Sprintf(" AND id = ANY($%d::uuid[])", argIdx)

		args = append(args, idStrings(filter.IDs))
		argIdx++
	}

	// Dates are fixed-width text, so string comparison is chronological.
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY date ASC, employee_id"

	return list(ctx, s.db, query, args...)
}

func list(ctx context.Context, q queryer, query string, args ...any) ([]*workday.WorkDay, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing work days: %w", err)
	}
	defer rows.Close()

	var wds []*workday.WorkDay

	for rows.Next() {
		wd, err := scanWorkDay(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning work day: %w", err)
		}

		wds = append(wds, wd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work day rows: %w", err)
	}

	return wds, nil
}

func (s *Store) SetWorked(ctx context.Context, id uuid.UUID, worked bool) error {
	query := `
		UPDATE work_days
		SET worked = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, worked, id)
	if err != nil {
		return fmt.Errorf("updating worked flag: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return workday.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteWorkDay(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM work_days WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting work day: %w", err)
	}

	return nil
}

func importLockKey(employeeID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("work_days_import"))
	h.Write([]byte{0})
	h.Write(employeeID[:])

	return int64(h.Sum64())
}

type importTx struct {
	tx *sql.Tx
}

// BeginImport serializes imports for the same employee with an advisory lock.
func (s *Store) BeginImport(ctx context.Context, employeeID uuid.UUID) (workday.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", importLockKey(employeeID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: dbTx}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) FindExisting(ctx context.Context, employeeID uuid.UUID, dates []string) ([]*workday.WorkDay, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	query := `SELECT ` + selectWorkDayColumns + `
		FROM work_days
		WHERE employee_id = $1 AND date = ANY($2::text[])
		ORDER BY date ASC`

	return list(ctx, itx.tx, query, employeeID, dates)
}

func (itx *importTx) UpsertWorkDays(ctx context.Context, wds []*workday.WorkDay) error {
	for _, wd := range wds {
		if err := upsert(ctx, itx.tx, wd); err != nil {
			return err
		}
	}

	return nil
}
