package reconcile

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

// Snapshot is a point-in-time copy of everything the calculators need.
// NewSnapshot copies its inputs, so later changes to the caller's records
// are not visible through it. Slices returned by its methods are shared and
// must not be modified.
type Snapshot struct {
	takenAt   time.Time
	employees []*employee.Employee
	workDays  []*workday.WorkDay
	payments  []*payment.Payment

	byID   map[uuid.UUID]*employee.Employee
	days   map[uuid.UUID][]*workday.WorkDay
	pays   map[uuid.UUID][]*payment.Payment
	byDate map[uuid.UUID]map[string]*workday.WorkDay
}

func NewSnapshot(employees []*employee.Employee, workDays []*workday.WorkDay, payments []*payment.Payment, takenAt time.Time) *Snapshot {
	s := &Snapshot{
		takenAt:   takenAt,
		employees: make([]*employee.Employee, len(employees)),
		workDays:  make([]*workday.WorkDay, len(workDays)),
		payments:  make([]*payment.Payment, len(payments)),
		byID:      make(map[uuid.UUID]*employee.Employee, len(employees)),
		byDate:    make(map[uuid.UUID]map[string]*workday.WorkDay),
	}

	for i, e := range employees {
		c := *e
		c.WageChangeDate = clonePtr(e.WageChangeDate)
		c.PreviousWage = clonePtr(e.PreviousWage)
		s.employees[i] = &c
		s.byID[c.ID] = &c
	}

	for i, wd := range workDays {
		c := *wd
		c.CustomAmount = clonePtr(wd.CustomAmount)
		s.workDays[i] = &c

		if s.byDate[c.EmployeeID] == nil {
			s.byDate[c.EmployeeID] = make(map[string]*workday.WorkDay)
		}

		s.byDate[c.EmployeeID][c.Date] = &c
	}

	for i, p := range payments {
		c := *p
		c.WorkDayIDs = slices.Clone(p.WorkDayIDs)
		s.payments[i] = &c
	}

	s.days, s.pays = group(s.workDays, s.payments)

	return s
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

func (s *Snapshot) TakenAt() time.Time { return s.takenAt }

func (s *Snapshot) Employees() []*employee.Employee { return s.employees }

func (s *Snapshot) WorkDays() []*workday.WorkDay { return s.workDays }

func (s *Snapshot) Payments() []*payment.Payment { return s.payments }

func (s *Snapshot) Employee(id uuid.UUID) (*employee.Employee, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// WorkDaysOf returns the employee's work days in the order they were loaded.
func (s *Snapshot) WorkDaysOf(employeeID uuid.UUID) []*workday.WorkDay {
	return s.days[employeeID]
}

func (s *Snapshot) PaymentsOf(employeeID uuid.UUID) []*payment.Payment {
	return s.pays[employeeID]
}

// WorkDayOn returns the employee's record for date, or nil.
func (s *Snapshot) WorkDayOn(employeeID uuid.UUID, date string) *workday.WorkDay {
	return s.byDate[employeeID][date]
}

// Stats returns business-wide totals over rng.
func (s *Snapshot) Stats(rng *DateRange) Stats {
	return AggregateAll(s.employees, s.workDays, s.payments, rng)
}

// EmployeeStats returns the totals of one employee, or false if the
// employee is not in the snapshot.
func (s *Snapshot) EmployeeStats(employeeID uuid.UUID, rng *DateRange) (Stats, bool) {
	e, ok := s.byID[employeeID]
	if !ok {
		return Stats{}, false
	}

	return Aggregate(*e, s.days[employeeID], s.pays[employeeID], rng), true
}

func (s *Snapshot) StatsByEmployee(rng *DateRange) map[uuid.UUID]Stats {
	return AggregateByEmployee(s.employees, s.workDays, s.payments, rng)
}

// Classify returns the status of the employee's cell on date, measured
// against the snapshot time.
func (s *Snapshot) Classify(employeeID uuid.UUID, date string) (Status, error) {
	return Classify(date, s.WorkDayOn(employeeID, date), s.takenAt)
}
