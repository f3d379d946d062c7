package reconcile

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

// PaymentImpact describes how unmarking some work days touches one payment.
type PaymentImpact struct {
	Payment   *payment.Payment
	Removed   []uuid.UUID
	Remaining []uuid.UUID
}

// Emptied reports whether no work day would be left on the payment.
func (i PaymentImpact) Emptied() bool {
	return len(i.Remaining) == 0
}

// UnmarkImpact returns one impact for every payment that covers at least one
// of workDayIDs, in the order the payments were given.
func UnmarkImpact(workDayIDs []uuid.UUID, payments []*payment.Payment) []PaymentImpact {
	unmark := make(map[uuid.UUID]bool, len(workDayIDs))
	for _, id := range workDayIDs {
		unmark[id] = true
	}

	var impacts []PaymentImpact

	for _, p := range payments {
		var removed, remaining []uuid.UUID

		for _, id := range p.WorkDayIDs {
			if unmark[id] {
				removed = append(removed, id)
			} else {
				remaining = append(remaining, id)
			}
		}

		if len(removed) > 0 {
			impacts = append(impacts, PaymentImpact{Payment: p, Removed: removed, Remaining: remaining})
		}
	}

	return impacts
}

// RemainingAmount is what a payment is worth once the removed days' resolved
// amounts are taken out. It never goes below zero.
func RemainingAmount(p payment.Payment, emp employee.Employee, removed []*workday.WorkDay) decimal.Decimal {
	left := p.Amount.Sub(PaymentAmount(emp, removed))
	if left.IsNegative() {
		return decimal.Zero
	}

	return round(left)
}

// ConfirmationMessage explains to a user what unmarking would do to the
// payments in impacts. It is empty when there is nothing to confirm.
func ConfirmationMessage(impacts []PaymentImpact) string {
	if len(impacts) == 0 {
		return ""
	}

	var b strings.Builder

	days := 0
	for _, i := range impacts {
		days += len(i.Removed)
	}

	fmt.Fprintf(&b, "%s already covered by %s.", plural(days, "work day is", "work days are"), plural(len(impacts), "payment", "payments"))

	for _, i := range impacts {
		fmt.Fprintf(&b, "\n- %s payment of %s on %s covers %s",
			i.Payment.Type, i.Payment.Amount.StringFixed(CurrencyPlaces), i.Payment.Date,
			plural(len(i.Payment.WorkDayIDs), "day", "days"))

		if i.Emptied() {
			b.WriteString("; it would be left with no days")
		} else {
			fmt.Fprintf(&b, "; %d would be removed", len(i.Removed))
		}
	}

	b.WriteString("\nAdjust the payments or delete them?")

	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}

	return fmt.Sprintf("%d %s", n, many)
}
