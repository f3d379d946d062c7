package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/MrJamesThe3rd/mydays/internal/payment"
)

type Store struct {
	db   *sql.DB
	tmap *pgtype.Map
}

func New(db *sql.DB) *Store {
	return &Store{db: db, tmap: pgtype.NewMap()}
}

type scanner interface {
	Scan(dest ...any) error
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// The covered work days are aggregated into a text array so one row carries
// the whole payment.
const selectPayment = `
	SELECT p.id, p.employee_id, p.amount, p.type, p.date, p.notes, p.created_at, p.updated_at,
		COALESCE(array_agg(pw.work_day_id::text ORDER BY pw.work_day_id) FILTER (WHERE pw.work_day_id IS NOT NULL), '{}')
	FROM payments p
	LEFT JOIN payment_work_days pw ON pw.payment_id = p.id
`

func (s *Store) scanPayment(row scanner) (*payment.Payment, error) {
	var p payment.Payment

	var ids []string

	if err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Amount, &p.Type, &p.Date, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		s.tmap.SQLScanner(&ids),
	); err != nil {
		return nil, err
	}

	p.WorkDayIDs = make([]uuid.UUID, 0, len(ids))

	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing work day id %q: %w", raw, err)
		}

		p.WorkDayIDs = append(p.WorkDayIDs, id)
	}

	return &p, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}

func (s *Store) GetPayment(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	query := selectPayment + ` WHERE p.id = $1 GROUP BY p.id`

	p, err := s.scanPayment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrNotFound
		}

		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return p, nil
}

func (s *Store) ListPayments(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, error) {
	query := selectPayment + ` WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)

		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND p.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND p.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " GROUP BY p.id ORDER BY p.date ASC, p.created_at ASC"

	return s.list(ctx, s.db, query, args...)
}

func (s *Store) ListCovering(ctx context.Context, workDayIDs []uuid.UUID) ([]*payment.Payment, error) {
	if len(workDayIDs) == 0 {
		return nil, nil
	}

	query := selectPayment + `
		WHERE p.id IN (SELECT payment_id FROM payment_work_days WHERE work_day_id = ANY($1::uuid[]))
		GROUP BY p.id
		ORDER BY p.date ASC, p.created_at ASC`

	return s.list(ctx, s.db, query, idStrings(workDayIDs))
}

func (s *Store) list(ctx context.Context, q queryer, query string, args ...any) ([]*payment.Payment, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var out []*payment.Payment

	for rows.Next() {
		p, err := s.scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", err)
	}

	return out, nil
}

type tx struct {
	tx *sql.Tx
}

func (s *Store) BeginTx(ctx context.Context) (payment.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning payment tx: %w", err)
	}

	return &tx{tx: dbTx}, nil
}

func (t *tx) Commit() error   { return t.tx.Commit() }
func (t *tx) Rollback() error { return t.tx.Rollback() }

func (t *tx) CreatePayment(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO payments (employee_id, amount, type, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query, p.EmployeeID, p.Amount, string(p.Type), p.Date, p.Notes).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}

	return t.linkWorkDays(ctx, p)
}

func (t *tx) linkWorkDays(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO payment_work_days (payment_id, work_day_id)
		SELECT $1, unnest($2::uuid[])
	`

	if _, err := t.tx.ExecContext(ctx, query, p.ID, idStrings(p.WorkDayIDs)); err != nil {
		return fmt.Errorf("linking payment work days: %w", err)
	}

	return nil
}

func (t *tx) UpdatePayment(ctx context.Context, p *payment.Payment) error {
	query := `
		UPDATE payments
		SET amount = $1, notes = $2, updated_at = NOW()
		WHERE id = $3
	`

	res, err := t.tx.ExecContext(ctx, query, p.Amount, p.Notes, p.ID)
	if err != nil {
		return fmt.Errorf("updating payment: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return payment.ErrNotFound
	}

	if _, err := t.tx.ExecContext(ctx, `DELETE FROM payment_work_days WHERE payment_id = $1`, p.ID); err != nil {
		return fmt.Errorf("clearing payment work days: %w", err)
	}

	return t.linkWorkDays(ctx, p)
}

func (t *tx) DeletePayment(ctx context.Context, id uuid.UUID) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM payment_work_days WHERE payment_id = $1`, id); err != nil {
		return fmt.Errorf("deleting payment work days: %w", err)
	}

	res, err := t.tx.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting payment: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return payment.ErrNotFound
	}

	return nil
}

func (t *tx) SetPaid(ctx context.Context, workDayIDs []uuid.UUID, paid bool) error {
	if len(workDayIDs) == 0 {
		return nil
	}

	query := `
		UPDATE work_days
		SET paid = $1, updated_at = NOW()
		WHERE id = ANY($2::uuid[])
	`

	if _, err := t.tx.ExecContext(ctx, query, paid, idStrings(workDayIDs)); err != nil {
		return fmt.Errorf("setting paid flag: %w", err)
	}

	return nil
}
