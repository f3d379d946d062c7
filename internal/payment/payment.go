package payment

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound           = errors.New("payment not found")
	ErrNegativeAmount     = errors.New("payment amount must not be negative")
	ErrUnknownPaymentType = errors.New("unknown payment type")
	ErrNoWorkDays         = errors.New("payment must cover at least one work day")
	ErrAlreadyPaid        = errors.New("work day is already paid")
	ErrNotWorked          = errors.New("work day is not marked as worked")
	ErrWrongEmployee      = errors.New("work day belongs to another employee")
)

type Type string

const (
	TypeCash         Type = "cash"
	TypeBankTransfer Type = "bank_transfer"
	TypeCheck        Type = "check"
	TypeMobileMoney  Type = "mobile_money"
	TypeOther        Type = "other"
)

// Types lists every accepted payment type in display order.
func Types() []Type {
	return []Type{TypeCash, TypeBankTransfer, TypeCheck, TypeMobileMoney, TypeOther}
}

func (t Type) Valid() bool {
	return slices.Contains(Types(), t)
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentType, s)
	}

	return t, nil
}

// Payment settles one or more work days of a single employee. Amount is what
// was actually handed over and may differ from the resolved wage of the days.
type Payment struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	WorkDayIDs []uuid.UUID
	Amount     decimal.Decimal
	Type       Type
	Date       string // yyyy-MM-dd
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// Covers reports whether the payment settles the given work day.
func (p Payment) Covers(workDayID uuid.UUID) bool {
	return slices.Contains(p.WorkDayIDs, workDayID)
}
