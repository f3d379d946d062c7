package workday_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	workdayhttp "github.com/MrJamesThe3rd/mydays/internal/http/workday"
	"github.com/MrJamesThe3rd/mydays/internal/importer"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

type fixture struct {
	router chi.Router
	repo   *workday.MockRepository
	itx    *workday.MockImportTx
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo: workday.NewMockRepository(ctrl),
		itx:  workday.NewMockImportTx(ctrl),
	}

	svc := workday.NewService(f.repo)
	h := workdayhttp.NewHandler(svc, importer.NewService(svc))

	f.router = chi.NewRouter()
	f.router.Route("/workdays", h.Routes)

	return f
}

func (f fixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return req
}

func uploadRequest(t *testing.T, employeeID, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("employee_id", employeeID))

	fw, err := mw.CreateFormFile("file", "days.csv")
	require.NoError(t, err)

	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/workdays/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func TestHandler_AddOrUpdate(t *testing.T) {
	employeeID := uuid.NewString()

	type testCase struct {
		name       string
		body       string
		setupMock  func(m *workday.MockRepository)
		wantStatus int
	}

	tests := []testCase{
		{
			name: "WorkedByDefault",
			body: `{"employee_id":"` + employeeID + `","date":"2024-01-10"}`,
			setupMock: func(m *workday.MockRepository) {
				m.EXPECT().ListWorkDays(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.EXPECT().
					UpsertWorkDay(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, wd *workday.WorkDay) error {
						assert.True(t, wd.Worked)
						wd.ID = uuid.New()
						return nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "NotWorked",
			body: `{"employee_id":"` + employeeID + `","date":"2024-01-10","worked":false}`,
			setupMock: func(m *workday.MockRepository) {
				m.EXPECT().ListWorkDays(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.EXPECT().
					UpsertWorkDay(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, wd *workday.WorkDay) error {
						assert.False(t, wd.Worked)
						return nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "PaidDayConflicts",
			body: `{"employee_id":"` + employeeID + `","date":"2024-01-10","worked":false}`,
			setupMock: func(m *workday.MockRepository) {
				m.EXPECT().
					ListWorkDays(gomock.Any(), gomock.Any()).
					Return([]*workday.WorkDay{{ID: uuid.New(), Date: "2024-01-10", Worked: true, Paid: true}}, nil)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "InvalidDate",
			body:       `{"employee_id":"` + employeeID + `","date":"2024-02-30"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "NegativeAmount",
			body:       `{"employee_id":"` + employeeID + `","date":"2024-01-10","custom_amount":"-1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingEmployee",
			body:       `{"date":"2024-01-10"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f.repo)
			}

			rec := f.serve(jsonRequest(http.MethodPut, "/workdays/", tt.body))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_SetWorked_Paid(t *testing.T) {
	f := newFixture(t)

	id := uuid.New()
	f.repo.EXPECT().GetWorkDay(gomock.Any(), id).Return(&workday.WorkDay{ID: id, Worked: true, Paid: true}, nil)

	rec := f.serve(jsonRequest(http.MethodPatch, "/workdays/"+id.String()+"/worked", `{"worked":false}`))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_List_BadEmployee(t *testing.T) {
	f := newFixture(t)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/workdays/?employee_id=nope", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Import(t *testing.T) {
	employeeID := uuid.New()
	csv := "data;trabalhou;valor;notas\n10/01/2024;sim;;\n11/01/2024;sim;95,50;meio dia\n"

	t.Run("Imported", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().BeginImport(gomock.Any(), employeeID).Return(f.itx, nil)
		f.itx.EXPECT().FindExisting(gomock.Any(), employeeID, []string{"2024-01-10", "2024-01-11"}).Return(nil, nil)
		f.itx.EXPECT().UpsertWorkDays(gomock.Any(), gomock.Len(2)).Return(nil)
		f.itx.EXPECT().Commit().Return(nil)
		f.itx.EXPECT().Rollback().Return(nil)

		rec := f.serve(uploadRequest(t, employeeID.String(), csv))
		require.Equal(t, http.StatusCreated, rec.Code)

		var got struct {
			Imported int    `json:"imported"`
			Charset  string `json:"charset"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, 2, got.Imported)
		assert.Equal(t, "UTF-8", got.Charset)
	})

	t.Run("Conflict", func(t *testing.T) {
		f := newFixture(t)

		existing := &workday.WorkDay{ID: uuid.New(), EmployeeID: employeeID, Date: "2024-01-10", Worked: true}

		f.repo.EXPECT().BeginImport(gomock.Any(), employeeID).Return(f.itx, nil)
		f.itx.EXPECT().FindExisting(gomock.Any(), employeeID, gomock.Any()).Return([]*workday.WorkDay{existing}, nil)
		f.itx.EXPECT().Rollback().Return(nil)

		rec := f.serve(uploadRequest(t, employeeID.String(), csv))
		require.Equal(t, http.StatusConflict, rec.Code)

		var got struct {
			New       []struct{ Date string } `json:"new"`
			Conflicts []struct {
				Incoming struct{ Date string } `json:"incoming"`
			} `json:"conflicts"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		require.Len(t, got.Conflicts, 1)
		assert.Equal(t, "2024-01-10", got.Conflicts[0].Incoming.Date)
		require.Len(t, got.New, 1)
		assert.Equal(t, "2024-01-11", got.New[0].Date)
	})

	t.Run("MissingEmployee", func(t *testing.T) {
		f := newFixture(t)

		rec := f.serve(uploadRequest(t, "", csv))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_ConfirmImport(t *testing.T) {
	f := newFixture(t)

	employeeID := uuid.New()

	f.repo.EXPECT().BeginImport(gomock.Any(), employeeID).Return(f.itx, nil)
	f.itx.EXPECT().FindExisting(gomock.Any(), employeeID, []string{"2024-01-10"}).Return(nil, nil)
	f.itx.EXPECT().UpsertWorkDays(gomock.Any(), gomock.Len(1)).Return(nil)
	f.itx.EXPECT().Commit().Return(nil)
	f.itx.EXPECT().Rollback().Return(nil)

	body := `{"employee_id":"` + employeeID.String() + `","rows":[{"date":"2024-01-10","worked":true}]}`

	rec := f.serve(jsonRequest(http.MethodPost, "/workdays/import/confirm", body))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"imported":1`)
}

func TestHandler_ConfirmImport_PaidDayConflicts(t *testing.T) {
	f := newFixture(t)

	employeeID := uuid.New()
	paid := &workday.WorkDay{ID: uuid.New(), EmployeeID: employeeID, Date: "2024-01-10", Worked: true, Paid: true}

	f.repo.EXPECT().BeginImport(gomock.Any(), employeeID).Return(f.itx, nil)
	f.itx.EXPECT().FindExisting(gomock.Any(), employeeID, gomock.Any()).Return([]*workday.WorkDay{paid}, nil)
	f.itx.EXPECT().Rollback().Return(nil)

	body := `{"employee_id":"` + employeeID.String() + `","rows":[{"date":"2024-01-10","worked":false}]}`

	rec := f.serve(jsonRequest(http.MethodPost, "/workdays/import/confirm", body))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
