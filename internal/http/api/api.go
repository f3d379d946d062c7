// Package api holds the request and response helpers shared by the HTTP
// handlers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/importer"
	"github.com/MrJamesThe3rd/mydays/internal/isodate"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/payroll"
	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
	"github.com/MrJamesThe3rd/mydays/internal/report"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

var ErrInvalidID = errors.New("invalid id")

type ErrorResponse struct {
	Error string `json:"error"`
}

var statusByError = []struct {
	err    error
	status int
}{
	{employee.ErrNotFound, http.StatusNotFound},
	{workday.ErrNotFound, http.StatusNotFound},
	{payment.ErrNotFound, http.StatusNotFound},

	{workday.ErrPaid, http.StatusConflict},
	{payment.ErrAlreadyPaid, http.StatusConflict},
	{payment.ErrNotWorked, http.StatusConflict},
	{employee.ErrWageHistoryInUse, http.StatusConflict},

	{ErrInvalidID, http.StatusBadRequest},
	{isodate.ErrInvalid, http.StatusBadRequest},
	{employee.ErrNameRequired, http.StatusBadRequest},
	{employee.ErrNegativeWage, http.StatusBadRequest},
	{employee.ErrInvalidWageChange, http.StatusBadRequest},
	{employee.ErrWageChangeNotAfter, http.StatusBadRequest},
	{workday.ErrNegativeAmount, http.StatusBadRequest},
	{payment.ErrNegativeAmount, http.StatusBadRequest},
	{payment.ErrUnknownPaymentType, http.StatusBadRequest},
	{payment.ErrNoWorkDays, http.StatusBadRequest},
	{payment.ErrWrongEmployee, http.StatusBadRequest},
	{payroll.ErrUnknownUnmarkMode, http.StatusBadRequest},
	{report.ErrUnknownFormat, http.StatusBadRequest},
	{importer.ErrInvalidAmount, http.StatusBadRequest},
	{importer.ErrInvalidWorked, http.StatusBadRequest},
}

// Status maps a service error to its HTTP status code.
func Status(err error) int {
	for _, e := range statusByError {
		if errors.Is(err, e.err) {
			return e.status
		}
	}

	return http.StatusInternalServerError
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes err with the status from Status. Internal errors are logged
// and never shown to the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		msg = "internal error"
	}

	JSON(w, status, ErrorResponse{Error: msg})
}

func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}

	return nil
}

func IDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrInvalidID, name)
	}

	return id, nil
}

// OptionalID parses the query parameter name; a missing value gives nil.
func OptionalID(r *http.Request, name string) (*uuid.UUID, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, name)
	}

	return &id, nil
}

// DateRange reads the start and end query parameters. Both are optional;
// nil is returned when neither is set.
func DateRange(r *http.Request) (*reconcile.DateRange, error) {
	start, end := r.URL.Query().Get("start"), r.URL.Query().Get("end")
	if start == "" && end == "" {
		return nil, nil
	}

	rng := &reconcile.DateRange{Start: start, End: end}
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	return rng, nil
}

// OptionalDate returns a pointer to the query value, or nil when missing.
func OptionalDate(r *http.Request, name string) *string {
	if s := r.URL.Query().Get(name); s != "" {
		return &s
	}

	return nil
}
