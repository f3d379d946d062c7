package workday

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/importer"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

type workDayResponse struct {
	ID           uuid.UUID        `json:"id"`
	EmployeeID   uuid.UUID        `json:"employee_id"`
	Date         string           `json:"date"`
	Worked       bool             `json:"worked"`
	Paid         bool             `json:"paid"`
	CustomAmount *decimal.Decimal `json:"custom_amount,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(wd *workday.WorkDay) workDayResponse {
	return workDayResponse{
		ID:           wd.ID,
		EmployeeID:   wd.EmployeeID,
		Date:         wd.Date,
		Worked:       wd.Worked,
		Paid:         wd.Paid,
		CustomAmount: wd.CustomAmount,
		Notes:        wd.Notes,
		CreatedAt:    wd.CreatedAt,
		UpdatedAt:    wd.UpdatedAt,
	}
}

func toResponseList(wds []*workday.WorkDay) []workDayResponse {
	resp := make([]workDayResponse, len(wds))
	for i, wd := range wds {
		resp[i] = toResponse(wd)
	}

	return resp
}

// rowDTO is an imported row, both in the conflict response and in the
// confirm request.
type rowDTO struct {
	Date         string           `json:"date"`
	Worked       bool             `json:"worked"`
	CustomAmount *decimal.Decimal `json:"custom_amount,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

func toRow(p workday.AddOrUpdateParams) rowDTO {
	return rowDTO{Date: p.Date, Worked: p.Worked, CustomAmount: p.CustomAmount, Notes: p.Notes}
}

func toRows(ps []workday.AddOrUpdateParams) []rowDTO {
	resp := make([]rowDTO, len(ps))
	for i, p := range ps {
		resp[i] = toRow(p)
	}

	return resp
}

func (d rowDTO) params(employeeID uuid.UUID) workday.AddOrUpdateParams {
	return workday.AddOrUpdateParams{
		EmployeeID:   employeeID,
		Date:         d.Date,
		Worked:       d.Worked,
		CustomAmount: d.CustomAmount,
		Notes:        d.Notes,
	}
}

type skippedDTO struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

func toSkipped(ss []importer.Skipped) []skippedDTO {
	resp := make([]skippedDTO, len(ss))
	for i, s := range ss {
		resp[i] = skippedDTO{Row: s.Row, Reason: s.Reason}
	}

	return resp
}

type importSuccessResponse struct {
	Imported int               `json:"imported"`
	WorkDays []workDayResponse `json:"work_days"`
	Skipped  []skippedDTO      `json:"skipped"`
	Charset  string            `json:"charset"`
}

type conflictDTO struct {
	Incoming rowDTO          `json:"incoming"`
	Existing workDayResponse `json:"existing"`
}

type importConflictResponse struct {
	New       []rowDTO      `json:"new"`
	Conflicts []conflictDTO `json:"conflicts"`
	Skipped   []skippedDTO  `json:"skipped"`
	Charset   string        `json:"charset"`
}
