package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/http/api"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/payroll"
)

type Handler struct {
	svc     *payment.Service
	payroll *payroll.Service
}

func NewHandler(svc *payment.Service, payrollSvc *payroll.Service) *Handler {
	return &Handler{svc: svc, payroll: payrollSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Post("/unmark", h.unmark)
	r.Post("/unmark/force", h.forceUnmark)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

type createPaymentRequest struct {
	EmployeeID uuid.UUID        `json:"employee_id"`
	WorkDayIDs []uuid.UUID      `json:"work_day_ids"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Type       payment.Type     `json:"type"`
	Date       string           `json:"date,omitempty"`
	Notes      string           `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := api.Decode(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	if req.EmployeeID == uuid.Nil {
		api.BadRequest(w, "employee_id is required")
		return
	}

	p, err := h.payroll.CreateAndMarkWorkDays(r.Context(), payroll.CreateParams{
		EmployeeID: req.EmployeeID,
		WorkDayIDs: req.WorkDayIDs,
		Amount:     req.Amount,
		Type:       req.Type,
		Notes:      req.Notes,
		Date:       req.Date,
	})
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, toResponse(p))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	employeeID, err := api.OptionalID(r, "employee_id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	ps, err := h.svc.List(r.Context(), payment.ListFilter{
		EmployeeID: employeeID,
		StartDate:  api.OptionalDate(r, "start"),
		EndDate:    api.OptionalDate(r, "end"),
	})
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponseList(ps))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponse(p))
}

// delete removes the payment and unmarks every day it covered.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		api.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type unmarkRequest struct {
	WorkDayIDs []uuid.UUID `json:"work_day_ids"`
}

// unmark answers 409 with the confirmation payload when a payment covers
// one of the days. Nothing is written in that case.
func (h *Handler) unmark(w http.ResponseWriter, r *http.Request) {
	var req unmarkRequest
	if err := api.Decode(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	res, err := h.payroll.UnmarkWorkDaysAsPaid(r.Context(), req.WorkDayIDs)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	status := http.StatusOK
	if res.RequiresConfirmation {
		status = http.StatusConflict
	}

	api.JSON(w, status, toUnmarkResponse(res))
}

func (h *Handler) forceUnmark(w http.ResponseWriter, r *http.Request) {
	mode, err := payroll.ParseUnmarkMode(r.URL.Query().Get("mode"))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	var req unmarkRequest
	if err := api.Decode(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	res, err := h.payroll.ForceUnmarkWorkDaysAsPaid(r.Context(), req.WorkDayIDs, mode)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toUnmarkResponse(res))
}
