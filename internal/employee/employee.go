package employee

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound           = errors.New("employee not found")
	ErrInvalidWageChange  = errors.New("wage change date and previous wage must be set together")
	ErrNegativeWage       = errors.New("wage must not be negative")
	ErrNameRequired       = errors.New("employee name is required")
	ErrWageChangeNotAfter = errors.New("wage change date must be after the current one")
	ErrWageHistoryInUse   = errors.New("worked days before the current wage change would be re-priced")
)

// Employee is the root record that work days and payments reference by ID.
type Employee struct {
	ID        uuid.UUID
	Name      string
	DailyWage decimal.Decimal
	// WageChangeDate is the first date DailyWage applies to. PreviousWage
	// applies strictly before it. Both are nil when the wage never changed.
	WageChangeDate *string
	PreviousWage   *decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// HasWageChange reports whether both halves of a wage change are present.
func (e Employee) HasWageChange() bool {
	return e.WageChangeDate != nil && e.PreviousWage != nil
}
