package workday

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/http/api"
	"github.com/MrJamesThe3rd/mydays/internal/importer"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

const maxUploadSize = 10 << 20

type Handler struct {
	svc       *workday.Service
	importSvc *importer.Service
}

func NewHandler(svc *workday.Service, importSvc *importer.Service) *Handler {
	return &Handler{svc: svc, importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Put("/", h.addOrUpdate)
	r.Get("/", h.list)
	r.Post("/import", h.importFile)
	r.Post("/import/confirm", h.confirmImport)
	r.Get("/{id}", h.get)
	r.Patch("/{id}/worked", h.setWorked)
	r.Delete("/{id}", h.delete)
}

type addOrUpdateRequest struct {
	EmployeeID   uuid.UUID        `json:"employee_id"`
	Date         string           `json:"date"`
	Worked       *bool            `json:"worked,omitempty"`
	CustomAmount *decimal.Decimal `json:"custom_amount,omitempty"`
	Notes        string           `json:"notes"`
}

func (h *Handler) addOrUpdate(w http.ResponseWriter, r *http.Request) {
	var req addOrUpdateRequest
	if err := api.Decode(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	if req.EmployeeID == uuid.Nil {
		api.BadRequest(w, "employee_id is required")
		return
	}

	// A day is recorded as worked unless stated otherwise.
	worked := req.Worked == nil || *req.Worked

	wd, err := h.svc.AddOrUpdate(r.Context(), workday.AddOrUpdateParams{
		EmployeeID:   req.EmployeeID,
		Date:         req.Date,
		Worked:       worked,
		CustomAmount: req.CustomAmount,
		Notes:        req.Notes,
	})
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponse(wd))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	employeeID, err := api.OptionalID(r, "employee_id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	wds, err := h.svc.List(r.Context(), workday.ListFilter{
		EmployeeID: employeeID,
		StartDate:  api.OptionalDate(r, "start"),
		EndDate:    api.OptionalDate(r, "end"),
	})
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponseList(wds))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	wd, err := h.svc.Get(r.Context(), id)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponse(wd))
}

type setWorkedRequest struct {
	Worked bool `json:"worked"`
}

func (h *Handler) setWorked(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	var req setWorkedRequest
	if err := api.Decode(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	if err := h.svc.SetWorked(r.Context(), id, req.Worked); err != nil {
		api.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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

// importFile takes a multipart form with employee_id and file fields.
// Conflicting dates are answered with 409 and nothing is stored; the
// client resends the rows to /import/confirm to overwrite them.
func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		api.BadRequest(w, "failed to parse form: "+err.Error())
		return
	}

	employeeID, err := uuid.Parse(r.FormValue("employee_id"))
	if err != nil {
		api.BadRequest(w, "employee_id field is required")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		api.BadRequest(w, "file field is required")
		return
	}
	defer file.Close()

	parsed, err := h.importSvc.Preview(file)
	if err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	result, err := h.svc.ImportBatch(r.Context(), employeeID, parsed.Rows)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{
			New:       toRows(result.New),
			Conflicts: make([]conflictDTO, len(result.Conflicts)),
			Skipped:   toSkipped(parsed.Skipped),
			Charset:   string(parsed.Charset),
		}

		for i, c := range result.Conflicts {
			resp.Conflicts[i] = conflictDTO{Incoming: toRow(c.Incoming), Existing: toResponse(c.Existing)}
		}

		api.JSON(w, http.StatusConflict, resp)

		return
	}

	api.JSON(w, http.StatusCreated, importSuccessResponse{
		Imported: len(result.Imported),
		WorkDays: toResponseList(result.Imported),
		Skipped:  toSkipped(parsed.Skipped),
		Charset:  string(parsed.Charset),
	})
}

type confirmRequest struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Rows       []rowDTO  `json:"rows"`
}

func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := api.Decode(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	if req.EmployeeID == uuid.Nil {
		api.BadRequest(w, "employee_id is required")
		return
	}

	params := make([]workday.AddOrUpdateParams, len(req.Rows))
	for i, row := range req.Rows {
		params[i] = row.params(req.EmployeeID)
	}

	wds, err := h.importSvc.Confirm(r.Context(), req.EmployeeID, params)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, importSuccessResponse{
		Imported: len(wds),
		WorkDays: toResponseList(wds),
		Skipped:  []skippedDTO{},
	})
}
