package employee

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/http/api"
	"github.com/MrJamesThe3rd/mydays/internal/isodate"
	"github.com/MrJamesThe3rd/mydays/internal/report"
	"github.com/MrJamesThe3rd/mydays/internal/summary"
)

type Handler struct {
	svc     *employee.Service
	summary *summary.Service
	reports *report.Service
	loc     *time.Location
}

func NewHandler(svc *employee.Service, summarySvc *summary.Service, reports *report.Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}

	return &Handler{svc: svc, summary: summarySvc, reports: reports, loc: loc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/stats", h.statsList)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/wage", h.changeWage)
	r.Get("/{id}/stats", h.stats)
	r.Get("/{id}/calendar", h.calendar)
	r.Get("/{id}/report.{format}", h.report)
}

type employeeRequest struct {
	Name           string           `json:"name"`
	DailyWage      decimal.Decimal  `json:"daily_wage"`
	WageChangeDate *string          `json:"wage_change_date,omitempty"`
	PreviousWage   *decimal.Decimal `json:"previous_wage,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := api.Decode(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	e, err := h.svc.Create(r.Context(), employee.CreateParams{
		Name:           req.Name,
		DailyWage:      req.DailyWage,
		WageChangeDate: req.WageChangeDate,
		PreviousWage:   req.PreviousWage,
	})
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	es, err := h.svc.List(r.Context())
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponseList(es))
}

func (h *Handler) statsList(w http.ResponseWriter, r *http.Request) {
	rng, err := api.DateRange(r)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	list, err := h.summary.EmployeeStatsList(r.Context(), rng)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toSummaryList(list))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	var req employeeRequest
	if err := api.Decode(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	e.Name = req.Name
	e.DailyWage = req.DailyWage
	e.WageChangeDate = req.WageChangeDate
	e.PreviousWage = req.PreviousWage

	if err := h.svc.Update(r.Context(), e); err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponse(e))
}

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

type changeWageRequest struct {
	DailyWage     decimal.Decimal `json:"daily_wage"`
	EffectiveDate string          `json:"effective_date"`
}

func (h *Handler) changeWage(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	var req changeWageRequest
	if err := api.Decode(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	e, err := h.svc.ChangeWage(r.Context(), id, req.DailyWage, req.EffectiveDate)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	rng, err := api.DateRange(r)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	stats, err := h.summary.EmployeeStats(r.Context(), id, rng)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, api.ToStats(stats))
}

// calendar serves ?month=yyyy-MM, defaulting to the current month.
func (h *Handler) calendar(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	now := time.Now().In(h.loc)
	year, month := now.Year(), now.Month()

	if s := r.URL.Query().Get("month"); s != "" {
		if year, month, err = isodate.ParseMonth(s); err != nil {
			api.Error(w, r, err)
			return
		}
	}

	cal, err := h.summary.Calendar(r.Context(), id, year, month)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toCalendar(cal))
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	format, err := report.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	rng, err := api.DateRange(r)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	rep, err := h.reports.Build(r.Context(), id, rng)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	// Rendered into memory first so a writer failure can still become a
	// proper error response.
	var buf bytes.Buffer
	if err := rep.Write(&buf, format); err != nil {
		api.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+rep.Filename(format)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}
