package reconcile

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/isodate"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

// DateRange is inclusive on both ends. An empty bound is open.
type DateRange struct {
	Start string
	End   string
}

func (r *DateRange) Contains(date string) bool {
	if r == nil {
		return true
	}

	if r.Start != "" && date < r.Start {
		return false
	}

	if r.End != "" && date > r.End {
		return false
	}

	return true
}

// Validate checks that both bounds, when set, are real dates in order.
func (r *DateRange) Validate() error {
	if r == nil {
		return nil
	}

	if r.Start != "" && !isodate.Valid(r.Start) {
		return fmt.Errorf("range start: %w", isodate.ErrInvalid)
	}

	if r.End != "" && !isodate.Valid(r.End) {
		return fmt.Errorf("range end: %w", isodate.ErrInvalid)
	}

	if r.Start != "" && r.End != "" && r.Start > r.End {
		return fmt.Errorf("range start after end: %w", isodate.ErrInvalid)
	}

	return nil
}

// PaidSource tells where TotalPaid came from.
type PaidSource string

const (
	PaidFromNone     PaidSource = "none"
	PaidFromPayments PaidSource = "payments"
	// PaidFromWorkDays is the degraded path: paid flags exist but no payment
	// record backs them, so the days' resolved amounts stand in.
	PaidFromWorkDays PaidSource = "workdays"
	// PaidFromMixed only appears on summed Stats whose parts disagree.
	PaidFromMixed PaidSource = "mixed"
)

type DiagnosticKind string

const (
	DiagPaidWithoutPayment     DiagnosticKind = "paid_without_payment"
	DiagInconsistentWageChange DiagnosticKind = "inconsistent_wage_change"
	DiagUnknownEmployee        DiagnosticKind = "unknown_employee"
	DiagInvalidDate            DiagnosticKind = "invalid_date"
)

// Diagnostic describes a data-integrity problem found while aggregating.
// Zero ids mean "not applicable".
type Diagnostic struct {
	Kind       DiagnosticKind
	EmployeeID uuid.UUID
	WorkDayID  uuid.UUID
	PaymentID  uuid.UUID
	Message    string
}

type Stats struct {
	TotalWorked   int
	TotalPaidDays int
	TotalEarned   decimal.Decimal
	TotalPaid     decimal.Decimal
	TotalOwed     decimal.Decimal
	PaidSource    PaidSource
	Diagnostics   []Diagnostic
}

func emptyStats() Stats {
	return Stats{
		TotalEarned: decimal.Zero,
		TotalPaid:   decimal.Zero,
		TotalOwed:   decimal.Zero,
		PaidSource:  PaidFromNone,
	}
}

// Add sums two Stats. TotalOwed is recomputed from the summed parts.
func (s Stats) Add(o Stats) Stats {
	out := Stats{
		TotalWorked:   s.TotalWorked + o.TotalWorked,
		TotalPaidDays: s.TotalPaidDays + o.TotalPaidDays,
		TotalEarned:   s.TotalEarned.Add(o.TotalEarned),
		TotalPaid:     s.TotalPaid.Add(o.TotalPaid),
		PaidSource:    mergeSource(s.PaidSource, o.PaidSource),
	}
	out.TotalOwed = out.TotalEarned.Sub(out.TotalPaid)
	out.Diagnostics = append(append(out.Diagnostics, s.Diagnostics...), o.Diagnostics...)

	return out
}

func mergeSource(a, b PaidSource) PaidSource {
	switch {
	case a == "" || a == PaidFromNone:
		return orNone(b)
	case b == "" || b == PaidFromNone || a == b:
		return a
	default:
		return PaidFromMixed
	}
}

func orNone(s PaidSource) PaidSource {
	if s == "" {
		return PaidFromNone
	}

	return s
}

// Aggregate computes the stats of one employee. Records of other employees
// are ignored, so callers may pass unfiltered collections. Payments are
// matched to the range by their own date.
func Aggregate(emp employee.Employee, workDays []*workday.WorkDay, payments []*payment.Payment, rng *DateRange) Stats {
	stats := emptyStats()

	if !WageConsistent(emp) {
		stats.Diagnostics = append(stats.Diagnostics, Diagnostic{
			Kind:       DiagInconsistentWageChange,
			EmployeeID: emp.ID,
			Message:    fmt.Sprintf("employee %q has only half of a wage change; daily wage used", emp.Name),
		})
	}

	covered := make(map[uuid.UUID]bool)
	paidTotal := decimal.Zero
	havePayments := false

	for _, p := range payments {
		if p.EmployeeID != emp.ID {
			continue
		}

		for _, id := range p.WorkDayIDs {
			covered[id] = true
		}

		if rng.Contains(p.Date) {
			havePayments = true
			paidTotal = paidTotal.Add(p.Amount)
		}
	}

	earned := decimal.Zero
	paidDays := decimal.Zero

	for _, wd := range workDays {
		if wd.EmployeeID != emp.ID {
			continue
		}

		if !isodate.Valid(wd.Date) {
			stats.Diagnostics = append(stats.Diagnostics, Diagnostic{
				Kind:       DiagInvalidDate,
				EmployeeID: emp.ID,
				WorkDayID:  wd.ID,
				Message:    fmt.Sprintf("work day has malformed date %q and was skipped", wd.Date),
			})

			continue
		}

		if !rng.Contains(wd.Date) {
			continue
		}

		amount := ResolveAmount(*wd, emp)

		if wd.Worked {
			stats.TotalWorked++
			earned = earned.Add(amount)
		}

		if wd.Paid {
			stats.TotalPaidDays++
			paidDays = paidDays.Add(amount)

			if !covered[wd.ID] {
				stats.Diagnostics = append(stats.Diagnostics, Diagnostic{
					Kind:       DiagPaidWithoutPayment,
					EmployeeID: emp.ID,
					WorkDayID:  wd.ID,
					Message:    fmt.Sprintf("work day %s is marked paid but no payment covers it", wd.Date),
				})
			}
		}
	}

	stats.TotalEarned = round(earned)

	switch {
	case havePayments:
		stats.TotalPaid = round(paidTotal)
		stats.PaidSource = PaidFromPayments
	case stats.TotalPaidDays > 0:
		stats.TotalPaid = round(paidDays)
		stats.PaidSource = PaidFromWorkDays
	}

	stats.TotalOwed = stats.TotalEarned.Sub(stats.TotalPaid)

	return stats
}

// AggregateByEmployee computes Aggregate for every employee, keyed by ID.
func AggregateByEmployee(employees []*employee.Employee, workDays []*workday.WorkDay, payments []*payment.Payment, rng *DateRange) map[uuid.UUID]Stats {
	days, pays := group(workDays, payments)

	out := make(map[uuid.UUID]Stats, len(employees))
	for _, emp := range employees {
		out[emp.ID] = Aggregate(*emp, days[emp.ID], pays[emp.ID], rng)
	}

	return out
}

// AggregateAll returns business-wide totals as the sum of per-employee
// Stats, so each day is resolved against its own employee's wage history.
// Records whose employee is unknown are excluded from every total and
// reported as diagnostics.
func AggregateAll(employees []*employee.Employee, workDays []*workday.WorkDay, payments []*payment.Payment, rng *DateRange) Stats {
	days, pays := group(workDays, payments)
	known := make(map[uuid.UUID]bool, len(employees))

	total := emptyStats()

	for _, emp := range employees {
		known[emp.ID] = true
		total = total.Add(Aggregate(*emp, days[emp.ID], pays[emp.ID], rng))
	}

	for _, wd := range workDays {
		if !known[wd.EmployeeID] {
			total.Diagnostics = append(total.Diagnostics, Diagnostic{
				Kind:       DiagUnknownEmployee,
				EmployeeID: wd.EmployeeID,
				WorkDayID:  wd.ID,
				Message:    fmt.Sprintf("work day %s references unknown employee %s", wd.Date, wd.EmployeeID),
			})
		}
	}

	for _, p := range payments {
		if !known[p.EmployeeID] {
			total.Diagnostics = append(total.Diagnostics, Diagnostic{
				Kind:       DiagUnknownEmployee,
				EmployeeID: p.EmployeeID,
				PaymentID:  p.ID,
				Message:    fmt.Sprintf("payment of %s references unknown employee %s", p.Amount.StringFixed(CurrencyPlaces), p.EmployeeID),
			})
		}
	}

	return total
}

func group(workDays []*workday.WorkDay, payments []*payment.Payment) (map[uuid.UUID][]*workday.WorkDay, map[uuid.UUID][]*payment.Payment) {
	days := make(map[uuid.UUID][]*workday.WorkDay)
	for _, wd := range workDays {
		days[wd.EmployeeID] = append(days[wd.EmployeeID], wd)
	}

	pays := make(map[uuid.UUID][]*payment.Payment)
	for _, p := range payments {
		pays[p.EmployeeID] = append(pays[p.EmployeeID], p)
	}

	return days, pays
}
