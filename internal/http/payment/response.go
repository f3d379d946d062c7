package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/payroll"
)

type paymentResponse struct {
	ID         uuid.UUID       `json:"id"`
	EmployeeID uuid.UUID       `json:"employee_id"`
	WorkDayIDs []uuid.UUID     `json:"work_day_ids"`
	Amount     decimal.Decimal `json:"amount"`
	Type       payment.Type    `json:"type"`
	Date       string          `json:"date"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(p *payment.Payment) paymentResponse {
	ids := p.WorkDayIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}

	return paymentResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		WorkDayIDs: ids,
		Amount:     p.Amount,
		Type:       p.Type,
		Date:       p.Date,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toResponseList(ps []*payment.Payment) []paymentResponse {
	resp := make([]paymentResponse, len(ps))
	for i, p := range ps {
		resp[i] = toResponse(p)
	}

	return resp
}

type impactResponse struct {
	Payment   paymentResponse `json:"payment"`
	Removed   []uuid.UUID     `json:"removed"`
	Remaining []uuid.UUID     `json:"remaining"`
}

type unmarkResponse struct {
	RequiresConfirmation bool             `json:"requires_confirmation"`
	ConfirmationMessage  string           `json:"confirmation_message,omitempty"`
	Impacts              []impactResponse `json:"impacts"`
}

func toUnmarkResponse(res *payroll.UnmarkResult) unmarkResponse {
	resp := unmarkResponse{
		RequiresConfirmation: res.RequiresConfirmation,
		ConfirmationMessage:  res.ConfirmationMessage,
		Impacts:              make([]impactResponse, len(res.Impacts)),
	}

	for i, imp := range res.Impacts {
		resp.Impacts[i] = impactResponse{
			Payment:   toResponse(imp.Payment),
			Removed:   orEmpty(imp.Removed),
			Remaining: orEmpty(imp.Remaining),
		}
	}

	return resp
}

func orEmpty(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}

	return ids
}
