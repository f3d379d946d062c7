// Package reconcile holds the wage and payment math shared by every view of
// the data. Functions here are pure: they take already-loaded records and
// never touch storage, so calendar, list, report and payment code all agree
// on what a day is worth and what is still owed.
package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

// CurrencyPlaces is the precision every total is rounded to.
const CurrencyPlaces = 2

// ResolveAmount returns what one work day is worth for its employee.
//
// A custom amount wins, zero included. Otherwise days before the wage change
// date are paid at the previous wage, and everything else at the daily wage.
// An employee with only one half of a wage change falls back to DailyWage.
func ResolveAmount(wd workday.WorkDay, emp employee.Employee) decimal.Decimal {
	if wd.CustomAmount != nil {
		return *wd.CustomAmount
	}

	if emp.HasWageChange() && wd.Date < *emp.WageChangeDate {
		return *emp.PreviousWage
	}

	return emp.DailyWage
}

// WageConsistent reports whether WageChangeDate and PreviousWage are either
// both set or both unset.
func WageConsistent(emp employee.Employee) bool {
	return (emp.WageChangeDate == nil) == (emp.PreviousWage == nil)
}

// PaymentAmount is the value a new payment for days should carry by default.
func PaymentAmount(emp employee.Employee, days []*workday.WorkDay) decimal.Decimal {
	total := decimal.Zero
	for _, wd := range days {
		total = total.Add(ResolveAmount(*wd, emp))
	}

	return round(total)
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}
