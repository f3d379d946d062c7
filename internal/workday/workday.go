package workday

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("work day not found")
	ErrNegativeAmount = errors.New("custom amount must not be negative")
	ErrPaid           = errors.New("work day is paid; unmark it as paid first")
)

// WorkDay records whether an employee worked on a calendar date. Worked=false
// means "not worked" for past dates and "scheduled" for future ones.
type WorkDay struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	Date       string // yyyy-MM-dd
	Worked     bool
	Paid       bool
	// CustomAmount overrides the wage for this day when non-nil. Zero is a
	// valid override.
	CustomAmount *decimal.Decimal
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
