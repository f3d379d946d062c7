package workday

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/isodate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=workday
type Repository interface {
	// UpsertWorkDay inserts or updates the record for (EmployeeID, Date).
	// The paid flag is never touched here.
	UpsertWorkDay(ctx context.Context, wd *WorkDay) error
	GetWorkDay(ctx context.Context, id uuid.UUID) (*WorkDay, error)
	ListWorkDays(ctx context.Context, filter ListFilter) ([]*WorkDay, error)
	SetWorked(ctx context.Context, id uuid.UUID, worked bool) error
	DeleteWorkDay(ctx context.Context, id uuid.UUID) error

	BeginImport(ctx context.Context, employeeID uuid.UUID) (ImportTx, error)
}

type ImportTx interface {
	FindExisting(ctx context.Context, employeeID uuid.UUID, dates []string) ([]*WorkDay, error)
	UpsertWorkDays(ctx context.Context, wds []*WorkDay) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type AddOrUpdateParams struct {
	EmployeeID   uuid.UUID
	Date         string
	Worked       bool
	CustomAmount *decimal.Decimal
	Notes        string
}

type ListFilter struct {
	EmployeeID *uuid.UUID
	IDs        []uuid.UUID
	StartDate  *string
	EndDate    *string
}

func (p AddOrUpdateParams) validate() error {
	if !isodate.Valid(p.Date) {
		return fmt.Errorf("work day date: %w", isodate.ErrInvalid)
	}

	if p.CustomAmount != nil && p.CustomAmount.IsNegative() {
		return ErrNegativeAmount
	}

	return nil
}

func (p AddOrUpdateParams) workDay() *WorkDay {
	return &WorkDay{
		EmployeeID:   p.EmployeeID,
		Date:         p.Date,
		Worked:       p.Worked,
		CustomAmount: p.CustomAmount,
		Notes:        p.Notes,
	}
}

// AddOrUpdate upserts the day on (employee, date). A paid day is refused
// with ErrPaid, since changing it would move the amount its payment covers.
func (s *Service) AddOrUpdate(ctx context.Context, params AddOrUpdateParams) (*WorkDay, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListWorkDays(ctx, ListFilter{
		EmployeeID: &params.EmployeeID,
		StartDate:  &params.Date,
		EndDate:    &params.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("find existing: %w", err)
	}

	if err := refusePaid(existing); err != nil {
		return nil, err
	}

	wd := params.workDay()
	if err := s.repo.UpsertWorkDay(ctx, wd); err != nil {
		return nil, err
	}

	return wd, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*WorkDay, error) {
	return s.repo.GetWorkDay(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*WorkDay, error) {
	if filter.StartDate != nil && !isodate.Valid(*filter.StartDate) {
		return nil, fmt.Errorf("start date: %w", isodate.ErrInvalid)
	}

	if filter.EndDate != nil && !isodate.Valid(*filter.EndDate) {
		return nil, fmt.Errorf("end date: %w", isodate.ErrInvalid)
	}

	return s.repo.ListWorkDays(ctx, filter)
}

// SetWorked toggles the worked flag. A paid day cannot be marked as not worked.
func (s *Service) SetWorked(ctx context.Context, id uuid.UUID, worked bool) error {
	if !worked {
		wd, err := s.repo.GetWorkDay(ctx, id)
		if err != nil {
			return err
		}

		if wd.Paid {
			return ErrPaid
		}
	}

	return s.repo.SetWorked(ctx, id, worked)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	wd, err := s.repo.GetWorkDay(ctx, id)
	if err != nil {
		return err
	}

	if wd.Paid {
		return ErrPaid
	}

	return s.repo.DeleteWorkDay(ctx, id)
}

type ImportResult struct {
	Imported  []*WorkDay
	New       []AddOrUpdateParams
	Conflicts []Conflict
}

// Conflict pairs an incoming row with the record already stored for its date.
type Conflict struct {
	Incoming AddOrUpdateParams
	Existing *WorkDay
}

// ImportBatch stores the rows of one employee unless some dates already have
// a record, in which case nothing is written and the conflicts are returned.
func (s *Service) ImportBatch(ctx context.Context, employeeID uuid.UUID, params []AddOrUpdateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	for i := range params {
		params[i].EmployeeID = employeeID
		if err := params[i].validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	itx, err := s.repo.BeginImport(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	existing, err := itx.FindExisting(ctx, employeeID, dates(params))
	if err != nil {
		return nil, fmt.Errorf("find existing: %w", err)
	}

	lookup := make(map[string]*WorkDay, len(existing))
	for _, wd := range existing {
		lookup[wd.Date] = wd
	}

	var newParams []AddOrUpdateParams

	var conflicts []Conflict

	for _, p := range params {
		if wd, found := lookup[p.Date]; found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: wd})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	wds := toWorkDays(newParams)
	if err := itx.UpsertWorkDays(ctx, wds); err != nil {
		return nil, fmt.Errorf("upsert work days: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Imported: wds}, nil
}

// CreateBatch upserts every row, overwriting existing records for the same
// dates. Nothing is written when one of those records is paid.
func (s *Service) CreateBatch(ctx context.Context, employeeID uuid.UUID, params []AddOrUpdateParams) ([]*WorkDay, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for i := range params {
		params[i].EmployeeID = employeeID
		if err := params[i].validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	itx, err := s.repo.BeginImport(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	existing, err := itx.FindExisting(ctx, employeeID, dates(params))
	if err != nil {
		return nil, fmt.Errorf("find existing: %w", err)
	}

	if err := refusePaid(existing); err != nil {
		return nil, err
	}

	wds := toWorkDays(params)
	if err := itx.UpsertWorkDays(ctx, wds); err != nil {
		return nil, fmt.Errorf("upsert work days: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return wds, nil
}

func dates(params []AddOrUpdateParams) []string {
	out := make([]string, 0, len(params))
	for _, p := range params {
		out = append(out, p.Date)
	}

	slices.Sort(out)

	return slices.Compact(out)
}

func toWorkDays(params []AddOrUpdateParams) []*WorkDay {
	wds := make([]*WorkDay, len(params))
	for i, p := range params {
		wds[i] = p.workDay()
	}

	return wds
}

func refusePaid(existing []*WorkDay) error {
	for _, wd := range existing {
		if wd.Paid {
			return fmt.Errorf("%w: %s", ErrPaid, wd.Date)
		}
	}

	return nil
}
