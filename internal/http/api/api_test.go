package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/http/api"
	"github.com/MrJamesThe3rd/mydays/internal/isodate"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

func TestStatus(t *testing.T) {
	type testCase struct {
		err  error
		want int
	}

	tests := []testCase{
		{err: employee.ErrNotFound, want: http.StatusNotFound},
		{err: fmt.Errorf("get employee: %w", employee.ErrNotFound), want: http.StatusNotFound},
		{err: fmt.Errorf("row 3: %w", workday.ErrNegativeAmount), want: http.StatusBadRequest},
		{err: fmt.Errorf("range end: %w", isodate.ErrInvalid), want: http.StatusBadRequest},
		{err: payment.ErrAlreadyPaid, want: http.StatusConflict},
		{err: errors.New("connection refused"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, api.Status(tt.err))
		})
	}
}

func TestError_HidesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	api.Error(rec, req, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestDateRange(t *testing.T) {
	rng, err := api.DateRange(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Nil(t, rng)

	rng, err = api.DateRange(httptest.NewRequest(http.MethodGet, "/?start=2024-01-01", nil))
	require.NoError(t, err)
	require.NotNil(t, rng)
	assert.Equal(t, "2024-01-01", rng.Start)
	assert.Empty(t, rng.End)

	_, err = api.DateRange(httptest.NewRequest(http.MethodGet, "/?start=2024-01-31&end=2024-01-01", nil))
	assert.ErrorIs(t, err, isodate.ErrInvalid)
}

func TestOptionalID(t *testing.T) {
	id, err := api.OptionalID(httptest.NewRequest(http.MethodGet, "/", nil), "employee_id")
	require.NoError(t, err)
	assert.Nil(t, id)

	_, err = api.OptionalID(httptest.NewRequest(http.MethodGet, "/?employee_id=abc", nil), "employee_id")
	assert.ErrorIs(t, err, api.ErrInvalidID)
}
