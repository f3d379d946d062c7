package summary

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/isodate"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=summary
type Employees interface {
	List(ctx context.Context) ([]*employee.Employee, error)
}

type WorkDays interface {
	List(ctx context.Context, filter workday.ListFilter) ([]*workday.WorkDay, error)
}

type Payments interface {
	List(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, error)
}

type Service struct {
	employees Employees
	workDays  WorkDays
	payments  Payments
	loc       *time.Location
	now       func() time.Time
}

// NewService builds the service. loc decides which date is "today" when
// classifying days; nil means time.Local.
func NewService(employees Employees, workDays WorkDays, payments Payments, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		employees: employees,
		workDays:  workDays,
		payments:  payments,
		loc:       loc,
		now:       time.Now,
	}
}

// Snapshot loads employees, work days and payments in parallel. A non-nil
// employeeID limits work days and payments to that employee. Date ranges
// are never pushed down: a payment outside a range may still cover a day
// inside it.
func (s *Service) Snapshot(ctx context.Context, employeeID *uuid.UUID) (*reconcile.Snapshot, error) {
	var (
		employees []*employee.Employee
		workDays  []*workday.WorkDay
		payments  []*payment.Payment
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		employees, err = s.employees.List(gCtx)
		if err != nil {
			return fmt.Errorf("list employees: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		workDays, err = s.workDays.List(gCtx, workday.ListFilter{EmployeeID: employeeID})
		if err != nil {
			return fmt.Errorf("list work days: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		payments, err = s.payments.List(gCtx, payment.ListFilter{EmployeeID: employeeID})
		if err != nil {
			return fmt.Errorf("list payments: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reconcile.NewSnapshot(employees, workDays, payments, s.now().In(s.loc)), nil
}

func (s *Service) EmployeeStats(ctx context.Context, employeeID uuid.UUID, rng *reconcile.DateRange) (reconcile.Stats, error) {
	if err := rng.Validate(); err != nil {
		return reconcile.Stats{}, err
	}

	snap, err := s.Snapshot(ctx, &employeeID)
	if err != nil {
		return reconcile.Stats{}, err
	}

	stats, ok := snap.EmployeeStats(employeeID, rng)
	if !ok {
		return reconcile.Stats{}, employee.ErrNotFound
	}

	return stats, nil
}

func (s *Service) BusinessStats(ctx context.Context, rng *reconcile.DateRange) (reconcile.Stats, error) {
	if err := rng.Validate(); err != nil {
		return reconcile.Stats{}, err
	}

	snap, err := s.Snapshot(ctx, nil)
	if err != nil {
		return reconcile.Stats{}, err
	}

	return snap.Stats(rng), nil
}

type EmployeeSummary struct {
	Employee *employee.Employee
	Stats    reconcile.Stats
}

// EmployeeStatsList returns one row per employee, ordered by name.
func (s *Service) EmployeeStatsList(ctx context.Context, rng *reconcile.DateRange) ([]EmployeeSummary, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.Snapshot(ctx, nil)
	if err != nil {
		return nil, err
	}

	byEmployee := snap.StatsByEmployee(rng)

	out := make([]EmployeeSummary, 0, len(byEmployee))
	for _, e := range snap.Employees() {
		out = append(out, EmployeeSummary{Employee: e, Stats: byEmployee[e.ID]})
	}

	slices.SortFunc(out, func(a, b EmployeeSummary) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Employee.Name), strings.ToLower(b.Employee.Name)),
			strings.Compare(a.Employee.ID.String(), b.Employee.ID.String()),
		)
	})

	return out, nil
}

type CalendarDay struct {
	Date   string
	Status reconcile.Status
	// WorkDay and Amount are nil when the date has no record.
	WorkDay *workday.WorkDay
	Amount  *decimal.Decimal
	Visible bool
}

type Calendar struct {
	Employee *employee.Employee
	Year     int
	Month    time.Month
	Days     []CalendarDay
	Stats    reconcile.Stats
}

// Calendar lays out one month of an employee's days with their status and
// resolved amount, plus the month's totals.
func (s *Service) Calendar(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) (*Calendar, error) {
	snap, err := s.Snapshot(ctx, &employeeID)
	if err != nil {
		return nil, err
	}

	return BuildCalendar(snap, employeeID, year, month)
}

// BuildCalendar is Calendar over an already loaded snapshot.
func BuildCalendar(snap *reconcile.Snapshot, employeeID uuid.UUID, year int, month time.Month) (*Calendar, error) {
	emp, ok := snap.Employee(employeeID)
	if !ok {
		return nil, employee.ErrNotFound
	}

	dates := isodate.MonthDays(year, month)
	cal := &Calendar{
		Employee: emp,
		Year:     year,
		Month:    month,
		Days:     make([]CalendarDay, 0, len(dates)),
	}

	for _, date := range dates {
		wd := snap.WorkDayOn(employeeID, date)

		// Dates come from MonthDays, so Classify cannot fail here.
		status, _ := reconcile.Classify(date, wd, snap.TakenAt())

		day := CalendarDay{Date: date, Status: status, WorkDay: wd}
		if wd != nil {
			day.Amount = new(reconcile.ResolveAmount(*wd, *emp))
			day.Visible = reconcile.Visible(*wd, snap.TakenAt())
		}

		cal.Days = append(cal.Days, day)
	}

	cal.Stats, _ = snap.EmployeeStats(employeeID, &reconcile.DateRange{Start: dates[0], End: dates[len(dates)-1]})

	return cal, nil
}

// Diagnostics returns every data-integrity problem across all records.
func (s *Service) Diagnostics(ctx context.Context) ([]reconcile.Diagnostic, error) {
	snap, err := s.Snapshot(ctx, nil)
	if err != nil {
		return nil, err
	}

	return snap.Stats(nil).Diagnostics, nil
}
