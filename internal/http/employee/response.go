package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/http/api"
	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
	"github.com/MrJamesThe3rd/mydays/internal/summary"
)

type employeeResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	DailyWage      decimal.Decimal  `json:"daily_wage"`
	WageChangeDate *string          `json:"wage_change_date,omitempty"`
	PreviousWage   *decimal.Decimal `json:"previous_wage,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(e *employee.Employee) employeeResponse {
	return employeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		DailyWage:      e.DailyWage,
		WageChangeDate: e.WageChangeDate,
		PreviousWage:   e.PreviousWage,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toResponseList(es []*employee.Employee) []employeeResponse {
	resp := make([]employeeResponse, len(es))
	for i, e := range es {
		resp[i] = toResponse(e)
	}

	return resp
}

type summaryResponse struct {
	Employee employeeResponse `json:"employee"`
	Stats    api.Stats        `json:"stats"`
}

func toSummaryList(list []summary.EmployeeSummary) []summaryResponse {
	resp := make([]summaryResponse, len(list))
	for i, s := range list {
		resp[i] = summaryResponse{Employee: toResponse(s.Employee), Stats: api.ToStats(s.Stats)}
	}

	return resp
}

type calendarDayResponse struct {
	Date      string           `json:"date"`
	Status    reconcile.Status `json:"status"`
	WorkDayID *uuid.UUID       `json:"work_day_id,omitempty"`
	Worked    bool             `json:"worked"`
	Paid      bool             `json:"paid"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	Visible   bool             `json:"visible"`
}

type calendarResponse struct {
	Employee employeeResponse      `json:"employee"`
	Month    string                `json:"month"`
	Days     []calendarDayResponse `json:"days"`
	Stats    api.Stats             `json:"stats"`
}

func toCalendar(c *summary.Calendar) calendarResponse {
	resp := calendarResponse{
		Employee: toResponse(c.Employee),
		Month:    time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
		Days:     make([]calendarDayResponse, len(c.Days)),
		Stats:    api.ToStats(c.Stats),
	}

	for i, d := range c.Days {
		day := calendarDayResponse{Date: d.Date, Status: d.Status, Amount: d.Amount, Visible: d.Visible}
		if d.WorkDay != nil {
			day.WorkDayID = new(d.WorkDay.ID)
			day.Worked = d.WorkDay.Worked
			day.Paid = d.WorkDay.Paid
			day.Notes = d.WorkDay.Notes
		}

		resp.Days[i] = day
	}

	return resp
}
