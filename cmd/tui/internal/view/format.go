package view

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
)

const dbTimeout = 5 * time.Second

// FormatMoney renders an amount with two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(reconcile.CurrencyPlaces)
}

// FormatOptionalMoney renders "-" for a missing amount.
func FormatOptionalMoney(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}

	return FormatMoney(*d)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
