package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	paymenthttp "github.com/MrJamesThe3rd/mydays/internal/http/payment"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/payroll"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

type fixture struct {
	router    chi.Router
	repo      *payment.MockRepository
	tx        *payment.MockTx
	workDays  *payroll.MockWorkDays
	employees *payroll.MockEmployees
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:      payment.NewMockRepository(ctrl),
		tx:        payment.NewMockTx(ctrl),
		workDays:  payroll.NewMockWorkDays(ctrl),
		employees: payroll.NewMockEmployees(ctrl),
	}

	payrollSvc := payroll.NewService(f.repo, f.workDays, f.employees, time.UTC)
	h := paymenthttp.NewHandler(payment.NewService(f.repo), payrollSvc)

	f.router = chi.NewRouter()
	f.router.Route("/payments", h.Routes)

	return f
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func (f fixture) expectTx() {
	f.repo.EXPECT().BeginTx(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Commit().Return(nil)
	f.tx.EXPECT().Rollback().Return(nil)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func idsJSON(ids ...uuid.UUID) string {
	b, _ := json.Marshal(ids)
	return string(b)
}

func TestHandler_Create(t *testing.T) {
	f := newFixture(t)

	emp := &employee.Employee{ID: uuid.New(), Name: "Ana", DailyWage: dec("95")}
	days := []*workday.WorkDay{
		{ID: uuid.New(), EmployeeID: emp.ID, Date: "2024-01-10", Worked: true},
		{ID: uuid.New(), EmployeeID: emp.ID, Date: "2024-01-11", Worked: true},
	}

	f.employees.EXPECT().Get(gomock.Any(), emp.ID).Return(emp, nil)
	f.workDays.EXPECT().List(gomock.Any(), gomock.Any()).Return(days, nil)
	f.expectTx()
	f.tx.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *payment.Payment) error {
			p.ID = uuid.New()
			return nil
		})
	f.tx.EXPECT().SetPaid(gomock.Any(), []uuid.UUID{days[0].ID, days[1].ID}, true).Return(nil)

	body := `{"employee_id":"` + emp.ID.String() + `","work_day_ids":` + idsJSON(days[0].ID, days[1].ID) +
		`,"type":"cash","date":"2024-01-15"}`

	rec := f.do(http.MethodPost, "/payments/", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got struct {
		Amount     decimal.Decimal `json:"amount"`
		Type       string          `json:"type"`
		WorkDayIDs []uuid.UUID     `json:"work_day_ids"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.True(t, dec("190").Equal(got.Amount))
	assert.Equal(t, "cash", got.Type)
	assert.Len(t, got.WorkDayIDs, 2)
}

func TestHandler_Create_Rejected(t *testing.T) {
	employeeID := uuid.NewString()

	type testCase struct {
		name string
		body string
	}

	tests := []testCase{
		{name: "NoEmployee", body: `{"work_day_ids":` + idsJSON(uuid.New()) + `,"type":"cash"}`},
		{name: "NoWorkDays", body: `{"employee_id":"` + employeeID + `","type":"cash"}`},
		{name: "UnknownType", body: `{"employee_id":"` + employeeID + `","work_day_ids":` + idsJSON(uuid.New()) + `,"type":"barter"}`},
		{name: "NegativeAmount", body: `{"employee_id":"` + employeeID + `","work_day_ids":` + idsJSON(uuid.New()) + `,"type":"cash","amount":"-5"}`},
		{name: "BadDate", body: `{"employee_id":"` + employeeID + `","work_day_ids":` + idsJSON(uuid.New()) + `,"type":"cash","date":"15/01/2024"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(http.MethodPost, "/payments/", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_Create_AlreadyPaid(t *testing.T) {
	f := newFixture(t)

	emp := &employee.Employee{ID: uuid.New(), Name: "Ana", DailyWage: dec("95")}
	day := &workday.WorkDay{ID: uuid.New(), EmployeeID: emp.ID, Date: "2024-01-10", Worked: true, Paid: true}

	f.employees.EXPECT().Get(gomock.Any(), emp.ID).Return(emp, nil)
	f.workDays.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*workday.WorkDay{day}, nil)

	body := `{"employee_id":"` + emp.ID.String() + `","work_day_ids":` + idsJSON(day.ID) + `,"type":"cash"}`
	assert.Equal(t, http.StatusConflict, f.do(http.MethodPost, "/payments/", body).Code)
}

func TestHandler_Unmark(t *testing.T) {
	employeeID := uuid.New()
	w1, w2 := uuid.New(), uuid.New()

	t.Run("NeedsConfirmation", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ListCovering(gomock.Any(), []uuid.UUID{w1}).Return([]*payment.Payment{{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			WorkDayIDs: []uuid.UUID{w1, w2},
			Amount:     dec("190"),
			Type:       payment.TypeCash,
			Date:       "2024-01-15",
		}}, nil)

		rec := f.do(http.MethodPost, "/payments/unmark", `{"work_day_ids":`+idsJSON(w1)+`}`)
		require.Equal(t, http.StatusConflict, rec.Code)

		var got struct {
			RequiresConfirmation bool   `json:"requires_confirmation"`
			ConfirmationMessage  string `json:"confirmation_message"`
			Impacts              []struct {
				Removed   []uuid.UUID `json:"removed"`
				Remaining []uuid.UUID `json:"remaining"`
			} `json:"impacts"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.True(t, got.RequiresConfirmation)
		assert.Contains(t, got.ConfirmationMessage, "190.00")
		require.Len(t, got.Impacts, 1)
		assert.Equal(t, []uuid.UUID{w1}, got.Impacts[0].Removed)
		assert.Equal(t, []uuid.UUID{w2}, got.Impacts[0].Remaining)
	})

	t.Run("Uncovered", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ListCovering(gomock.Any(), []uuid.UUID{w1}).Return(nil, nil)
		f.expectTx()
		f.tx.EXPECT().SetPaid(gomock.Any(), []uuid.UUID{w1}, false).Return(nil)

		rec := f.do(http.MethodPost, "/payments/unmark", `{"work_day_ids":`+idsJSON(w1)+`}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"requires_confirmation":false`)
	})

	t.Run("Empty", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/payments/unmark", `{"work_day_ids":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_ForceUnmark(t *testing.T) {
	w1, w2 := uuid.New(), uuid.New()

	t.Run("DeletePayment", func(t *testing.T) {
		f := newFixture(t)

		p := &payment.Payment{ID: uuid.New(), EmployeeID: uuid.New(), WorkDayIDs: []uuid.UUID{w1, w2}, Amount: dec("190")}

		f.repo.EXPECT().ListCovering(gomock.Any(), []uuid.UUID{w1}).Return([]*payment.Payment{p}, nil)
		f.expectTx()
		f.tx.EXPECT().DeletePayment(gomock.Any(), p.ID).Return(nil)
		f.tx.EXPECT().SetPaid(gomock.Any(), []uuid.UUID{w1, w2}, false).Return(nil)

		rec := f.do(http.MethodPost, "/payments/unmark/force?mode=delete", `{"work_day_ids":`+idsJSON(w1)+`}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("UnknownMode", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/payments/unmark/force?mode=shred", `{"work_day_ids":`+idsJSON(w1)+`}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	f.repo.EXPECT().GetPayment(gomock.Any(), id).Return(nil, payment.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/payments/"+id.String(), "").Code)
}
