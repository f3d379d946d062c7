package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mydays/internal/isodate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListPayments(ctx context.Context, filter ListFilter) ([]*Payment, error)
	// ListCovering returns every payment that covers at least one of workDayIDs.
	ListCovering(ctx context.Context, workDayIDs []uuid.UUID) ([]*Payment, error)

	BeginTx(ctx context.Context) (Tx, error)
}

// Tx groups a payment write with the paid flags of its work days.
type Tx interface {
	CreatePayment(ctx context.Context, p *Payment) error
	// UpdatePayment rewrites the amount and the covered work days.
	UpdatePayment(ctx context.Context, p *Payment) error
	DeletePayment(ctx context.Context, id uuid.UUID) error
	SetPaid(ctx context.Context, workDayIDs []uuid.UUID, paid bool) error
	Commit() error
	Rollback() error
}

type ListFilter struct {
	EmployeeID *uuid.UUID
	StartDate  *string
	EndDate    *string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.repo.GetPayment(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Payment, error) {
	if filter.StartDate != nil && !isodate.Valid(*filter.StartDate) {
		return nil, fmt.Errorf("start date: %w", isodate.ErrInvalid)
	}

	if filter.EndDate != nil && !isodate.Valid(*filter.EndDate) {
		return nil, fmt.Errorf("end date: %w", isodate.ErrInvalid)
	}

	return s.repo.ListPayments(ctx, filter)
}

// Delete removes a payment and marks every day it covered as unpaid.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := tx.DeletePayment(ctx, p.ID); err != nil {
		return err
	}

	if err := tx.SetPaid(ctx, p.WorkDayIDs, false); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete payment: %w", err)
	}

	return nil
}
