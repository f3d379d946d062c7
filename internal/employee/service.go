package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/isodate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=employee
type Repository interface {
	CreateEmployee(ctx context.Context, e *Employee) error
	GetEmployee(ctx context.Context, id uuid.UUID) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, e *Employee) error
	// HasWorkedDaysBefore reports whether any worked day is dated strictly before date.
	HasWorkedDaysBefore(ctx context.Context, id uuid.UUID, date string) (bool, error)
	// DeleteEmployee removes the employee together with its work days and payments.
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name           string
	DailyWage      decimal.Decimal
	WageChangeDate *string
	PreviousWage   *decimal.Decimal
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Employee, error) {
	e := &Employee{
		Name:           strings.TrimSpace(params.Name),
		DailyWage:      params.DailyWage,
		WageChangeDate: params.WageChangeDate,
		PreviousWage:   params.PreviousWage,
	}
	if err := validate(e); err != nil {
		return nil, err
	}

	if err := s.repo.CreateEmployee(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Employee, error) {
	return s.repo.GetEmployee(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Employee, error) {
	return s.repo.ListEmployees(ctx)
}

func (s *Service) Update(ctx context.Context, e *Employee) error {
	e.Name = strings.TrimSpace(e.Name)
	if err := validate(e); err != nil {
		return err
	}

	return s.repo.UpdateEmployee(ctx, e)
}

// ChangeWage moves the current daily wage into PreviousWage and applies
// newWage from effectiveDate on. Only the latest change is kept, so a second
// change is refused with ErrWageHistoryInUse while worked days still sit
// before the current cutover.
func (s *Service) ChangeWage(ctx context.Context, id uuid.UUID, newWage decimal.Decimal, effectiveDate string) (*Employee, error) {
	if !isodate.Valid(effectiveDate) {
		return nil, fmt.Errorf("wage change date: %w", isodate.ErrInvalid)
	}

	if newWage.IsNegative() {
		return nil, ErrNegativeWage
	}

	e, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.WageChangeDate != nil && effectiveDate <= *e.WageChangeDate {
		return nil, ErrWageChangeNotAfter
	}

	if e.WageChangeDate != nil {
		inUse, err := s.repo.HasWorkedDaysBefore(ctx, id, *e.WageChangeDate)
		if err != nil {
			return nil, fmt.Errorf("check wage history: %w", err)
		}

		if inUse {
			return nil, fmt.Errorf("%w: %s", ErrWageHistoryInUse, *e.WageChangeDate)
		}
	}

	previous := e.DailyWage
	e.PreviousWage = &previous
	e.WageChangeDate = &effectiveDate
	e.DailyWage = newWage

	if err := s.repo.UpdateEmployee(ctx, e); err != nil {
		return nil, fmt.Errorf("change wage: %w", err)
	}

	return e, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEmployee(ctx, id)
}

func validate(e *Employee) error {
	if e.Name == "" {
		return ErrNameRequired
	}

	if e.DailyWage.IsNegative() {
		return ErrNegativeWage
	}

	if (e.WageChangeDate == nil) != (e.PreviousWage == nil) {
		return ErrInvalidWageChange
	}

	if e.WageChangeDate != nil && !isodate.Valid(*e.WageChangeDate) {
		return fmt.Errorf("wage change date: %w", isodate.ErrInvalid)
	}

	if e.PreviousWage != nil && e.PreviousWage.IsNegative() {
		return ErrNegativeWage
	}

	return nil
}
