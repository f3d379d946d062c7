// Package payroll settles work days with payments and undoes settlements,
// keeping each payment and the paid flags of its days in step.
package payroll

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/isodate"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

var ErrUnknownUnmarkMode = errors.New("unknown unmark mode")

//go:generate mockgen -source=service.go -destination=service_mock.go -package=payroll
type WorkDays interface {
	List(ctx context.Context, filter workday.ListFilter) ([]*workday.WorkDay, error)
}

type Employees interface {
	Get(ctx context.Context, id uuid.UUID) (*employee.Employee, error)
}

// UnmarkMode decides what happens to a payment whose days are unmarked.
type UnmarkMode string

const (
	// UnmarkAdjust removes the days from the payment and lowers its amount
	// by their resolved value. A payment left with no days is deleted.
	UnmarkAdjust UnmarkMode = "adjust"
	// UnmarkDeletePayment deletes the payment and unmarks every day it
	// covered, including days that were not asked for.
	UnmarkDeletePayment UnmarkMode = "delete"
)

// ParseUnmarkMode accepts "adjust", "delete" or an empty string, which
// means UnmarkAdjust.
func ParseUnmarkMode(s string) (UnmarkMode, error) {
	switch UnmarkMode(s) {
	case "", UnmarkAdjust:
		return UnmarkAdjust, nil
	case UnmarkDeletePayment:
		return UnmarkDeletePayment, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnmarkMode, s)
	}
}

type Service struct {
	payments  payment.Repository
	workDays  WorkDays
	employees Employees
	loc       *time.Location
	now       func() time.Time
}

// NewService builds the service. loc decides which calendar date "today"
// is when a payment is recorded without a date; nil means time.Local.
func NewService(payments payment.Repository, workDays WorkDays, employees Employees, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		payments:  payments,
		workDays:  workDays,
		employees: employees,
		loc:       loc,
		now:       time.Now,
	}
}

type CreateParams struct {
	EmployeeID uuid.UUID
	WorkDayIDs []uuid.UUID
	// Amount defaults to the resolved value of the days when nil.
	Amount *decimal.Decimal
	Type   payment.Type
	Notes  string
	// Date defaults to today.
	Date string
}

func (p CreateParams) validate() error {
	if len(p.WorkDayIDs) == 0 {
		return payment.ErrNoWorkDays
	}

	if !p.Type.Valid() {
		return fmt.Errorf("%w: %q", payment.ErrUnknownPaymentType, p.Type)
	}

	if p.Amount != nil && p.Amount.IsNegative() {
		return payment.ErrNegativeAmount
	}

	if p.Date != "" && !isodate.Valid(p.Date) {
		return fmt.Errorf("payment date: %w", isodate.ErrInvalid)
	}

	return nil
}

// CreateAndMarkWorkDays records a payment and marks its days as paid in one
// transaction. Every day must exist, belong to the employee, be worked
// and not already be paid.
func (s *Service) CreateAndMarkWorkDays(ctx context.Context, params CreateParams) (*payment.Payment, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	ids := unique(params.WorkDayIDs)

	emp, err := s.employees.Get(ctx, params.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}

	days, err := s.workDays.List(ctx, workday.ListFilter{IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("list work days: %w", err)
	}

	if len(days) != len(ids) {
		return nil, workday.ErrNotFound
	}

	for _, wd := range days {
		switch {
		case wd.EmployeeID != emp.ID:
			return nil, fmt.Errorf("%w: %s", payment.ErrWrongEmployee, wd.Date)
		case wd.Paid:
			return nil, fmt.Errorf("%w: %s", payment.ErrAlreadyPaid, wd.Date)
		case !wd.Worked:
			return nil, fmt.Errorf("%w: %s", payment.ErrNotWorked, wd.Date)
		}
	}

	p := &payment.Payment{
		EmployeeID: emp.ID,
		WorkDayIDs: ids,
		Type:       params.Type,
		Notes:      params.Notes,
		Date:       params.Date,
	}

	if params.Amount != nil {
		p.Amount = params.Amount.Round(reconcile.CurrencyPlaces)
	} else {
		p.Amount = reconcile.PaymentAmount(*emp, days)
	}

	if p.Date == "" {
		p.Date = isodate.Today(s.now().In(s.loc))
	}

	tx, err := s.payments.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := tx.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	if err := tx.SetPaid(ctx, ids, true); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit payment: %w", err)
	}

	return p, nil
}

type UnmarkResult struct {
	RequiresConfirmation bool
	ConfirmationMessage  string
	// Impacts lists the payments that were, or would be, touched.
	Impacts []reconcile.PaymentImpact
}

// UnmarkWorkDaysAsPaid clears the paid flag of days that no payment covers.
// When some payment covers one of them nothing is written and the result
// asks for confirmation; ForceUnmarkWorkDaysAsPaid then applies it.
func (s *Service) UnmarkWorkDaysAsPaid(ctx context.Context, workDayIDs []uuid.UUID) (*UnmarkResult, error) {
	if len(workDayIDs) == 0 {
		return nil, payment.ErrNoWorkDays
	}

	ids := unique(workDayIDs)

	covering, err := s.payments.ListCovering(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list covering payments: %w", err)
	}

	if impacts := reconcile.UnmarkImpact(ids, covering); len(impacts) > 0 {
		return &UnmarkResult{
			RequiresConfirmation: true,
			ConfirmationMessage:  reconcile.ConfirmationMessage(impacts),
			Impacts:              impacts,
		}, nil
	}

	tx, err := s.payments.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := tx.SetPaid(ctx, ids, false); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit unmark: %w", err)
	}

	return &UnmarkResult{}, nil
}

// ForceUnmarkWorkDaysAsPaid unmarks the days and resolves every covering
// payment according to mode, all in one transaction.
func (s *Service) ForceUnmarkWorkDaysAsPaid(ctx context.Context, workDayIDs []uuid.UUID, mode UnmarkMode) (*UnmarkResult, error) {
	if len(workDayIDs) == 0 {
		return nil, payment.ErrNoWorkDays
	}

	if mode != UnmarkAdjust && mode != UnmarkDeletePayment {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnmarkMode, mode)
	}

	ids := unique(workDayIDs)

	covering, err := s.payments.ListCovering(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list covering payments: %w", err)
	}

	impacts := reconcile.UnmarkImpact(ids, covering)

	var adjusted []*payment.Payment

	if mode == UnmarkAdjust {
		adjusted, err = s.adjusted(ctx, impacts)
		if err != nil {
			return nil, err
		}
	}

	tx, err := s.payments.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	unpaid := slices.Clone(ids)

	for i, impact := range impacts {
		switch {
		case mode == UnmarkDeletePayment:
			unpaid = append(unpaid, impact.Remaining...)
			err = tx.DeletePayment(ctx, impact.Payment.ID)
		case impact.Emptied():
			err = tx.DeletePayment(ctx, impact.Payment.ID)
		default:
			err = tx.UpdatePayment(ctx, adjusted[i])
		}

		if err != nil {
			return nil, err
		}
	}

	if err := tx.SetPaid(ctx, unique(unpaid), false); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit unmark: %w", err)
	}

	return &UnmarkResult{Impacts: impacts}, nil
}

// adjusted returns, index for index with impacts, the payment as it should
// read after its removed days are taken out. Emptied payments get nil.
func (s *Service) adjusted(ctx context.Context, impacts []reconcile.PaymentImpact) ([]*payment.Payment, error) {
	var removedIDs []uuid.UUID
	for _, impact := range impacts {
		if !impact.Emptied() {
			removedIDs = append(removedIDs, impact.Removed...)
		}
	}

	if len(removedIDs) == 0 {
		return make([]*payment.Payment, len(impacts)), nil
	}

	days, err := s.workDays.List(ctx, workday.ListFilter{IDs: unique(removedIDs)})
	if err != nil {
		return nil, fmt.Errorf("list work days: %w", err)
	}

	byID := make(map[uuid.UUID]*workday.WorkDay, len(days))
	for _, wd := range days {
		byID[wd.ID] = wd
	}

	employees := make(map[uuid.UUID]*employee.Employee)
	out := make([]*payment.Payment, len(impacts))

	for i, impact := range impacts {
		if impact.Emptied() {
			continue
		}

		emp, ok := employees[impact.Payment.EmployeeID]
		if !ok {
			emp, err = s.employees.Get(ctx, impact.Payment.EmployeeID)
			if err != nil {
				return nil, fmt.Errorf("get employee: %w", err)
			}

			employees[emp.ID] = emp
		}

		var removed []*workday.WorkDay

		for _, id := range impact.Removed {
			// A day deleted since it was paid no longer has a value to take out.
			if wd, found := byID[id]; found {
				removed = append(removed, wd)
			}
		}

		p := *impact.Payment
		p.WorkDayIDs = slices.Clone(impact.Remaining)
		p.Amount = reconcile.RemainingAmount(p, *emp, removed)
		out[i] = &p
	}

	return out, nil
}

func unique(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))

	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	return out
}
