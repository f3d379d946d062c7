package api

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
)

type Diagnostic struct {
	Kind       reconcile.DiagnosticKind `json:"kind"`
	EmployeeID uuid.UUID                `json:"employee_id"`
	WorkDayID  *uuid.UUID               `json:"work_day_id,omitempty"`
	PaymentID  *uuid.UUID               `json:"payment_id,omitempty"`
	Message    string                   `json:"message"`
}

func ToDiagnostics(diags []reconcile.Diagnostic) []Diagnostic {
	resp := make([]Diagnostic, len(diags))
	for i, d := range diags {
		resp[i] = Diagnostic{Kind: d.Kind, EmployeeID: d.EmployeeID, Message: d.Message}
		if d.WorkDayID != uuid.Nil {
			resp[i].WorkDayID = new(d.WorkDayID)
		}

		if d.PaymentID != uuid.Nil {
			resp[i].PaymentID = new(d.PaymentID)
		}
	}

	return resp
}

type Stats struct {
	TotalWorked   int                  `json:"total_worked"`
	TotalPaidDays int                  `json:"total_paid_days"`
	TotalEarned   decimal.Decimal      `json:"total_earned"`
	TotalPaid     decimal.Decimal      `json:"total_paid"`
	TotalOwed     decimal.Decimal      `json:"total_owed"`
	PaidSource    reconcile.PaidSource `json:"paid_source"`
	Diagnostics   []Diagnostic         `json:"diagnostics"`
}

func ToStats(s reconcile.Stats) Stats {
	return Stats{
		TotalWorked:   s.TotalWorked,
		TotalPaidDays: s.TotalPaidDays,
		TotalEarned:   s.TotalEarned,
		TotalPaid:     s.TotalPaid,
		TotalOwed:     s.TotalOwed,
		PaidSource:    s.PaidSource,
		Diagnostics:   ToDiagnostics(s.Diagnostics),
	}
}
