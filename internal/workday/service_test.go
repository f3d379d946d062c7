package workday_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/mydays/internal/isodate"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

func TestService_AddOrUpdate(t *testing.T) {
	zero := decimal.Zero
	negative := decimal.NewFromInt(-10)

	type testCase struct {
		name      string
		params    workday.AddOrUpdateParams
		setupMock func(m *workday.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: workday.AddOrUpdateParams{EmployeeID: uuid.New(), Date: "2024-01-10", Worked: true},
			setupMock: func(m *workday.MockRepository) {
				m.EXPECT().ListWorkDays(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.EXPECT().
					UpsertWorkDay(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, wd *workday.WorkDay) error {
						wd.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:   "ZeroCustomAmountIsKept",
			params: workday.AddOrUpdateParams{EmployeeID: uuid.New(), Date: "2024-01-10", Worked: true, CustomAmount: &zero},
			setupMock: func(m *workday.MockRepository) {
				m.EXPECT().ListWorkDays(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.EXPECT().
					UpsertWorkDay(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, wd *workday.WorkDay) error {
						require.NotNil(t, wd.CustomAmount)
						assert.True(t, wd.CustomAmount.IsZero())
						return nil
					})
			},
		},
		{
			name:   "PaidDayIsRefused",
			params: workday.AddOrUpdateParams{EmployeeID: uuid.New(), Date: "2024-01-10", Worked: false},
			setupMock: func(m *workday.MockRepository) {
				m.EXPECT().
					ListWorkDays(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f workday.ListFilter) ([]*workday.WorkDay, error) {
						require.NotNil(t, f.StartDate)
						require.NotNil(t, f.EndDate)
						assert.Equal(t, "2024-01-10", *f.StartDate)
						assert.Equal(t, "2024-01-10", *f.EndDate)

						return []*workday.WorkDay{{ID: uuid.New(), Date: "2024-01-10", Worked: true, Paid: true}}, nil
					})
			},
			wantErr: workday.ErrPaid,
		},
		{
			name:    "InvalidDate",
			params:  workday.AddOrUpdateParams{EmployeeID: uuid.New(), Date: "10/01/2024"},
			wantErr: isodate.ErrInvalid,
		},
		{
			name:    "NegativeCustomAmount",
			params:  workday.AddOrUpdateParams{EmployeeID: uuid.New(), Date: "2024-01-10", CustomAmount: &negative},
			wantErr: workday.ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := workday.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := workday.NewService(repo)
			got, err := svc.AddOrUpdate(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.params.Date, got.Date)
		})
	}
}

func TestService_List_RejectsBadRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := workday.NewService(workday.NewMockRepository(ctrl))

	_, err := svc.List(context.Background(), workday.ListFilter{StartDate: new("2024-1-1")})
	assert.ErrorIs(t, err, isodate.ErrInvalid)
}

func TestService_SetWorked_PaidDayCannotBeUnworked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := workday.NewMockRepository(ctrl)
	svc := workday.NewService(repo)

	id := uuid.New()
	repo.EXPECT().GetWorkDay(gomock.Any(), id).Return(&workday.WorkDay{ID: id, Worked: true, Paid: true}, nil)

	assert.ErrorIs(t, svc.SetWorked(context.Background(), id, false), workday.ErrPaid)
}

func TestService_SetWorked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := workday.NewMockRepository(ctrl)
	svc := workday.NewService(repo)

	id := uuid.New()
	repo.EXPECT().SetWorked(gomock.Any(), id, true).Return(nil)

	assert.NoError(t, svc.SetWorked(context.Background(), id, true))
}

func TestService_ImportBatch_NoConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := workday.NewMockRepository(ctrl)
	itx := workday.NewMockImportTx(ctrl)
	svc := workday.NewService(repo)

	employeeID := uuid.New()
	params := []workday.AddOrUpdateParams{
		{Date: "2024-01-11", Worked: true},
		{Date: "2024-01-10", Worked: true},
	}

	repo.EXPECT().BeginImport(gomock.Any(), employeeID).Return(itx, nil)
	itx.EXPECT().FindExisting(gomock.Any(), employeeID, []string{"2024-01-10", "2024-01-11"}).Return(nil, nil)
	itx.EXPECT().UpsertWorkDays(gomock.Any(), gomock.Len(2)).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), employeeID, params)
	require.NoError(t, err)
	require.Len(t, result.Imported, 2)
	assert.Equal(t, employeeID, result.Imported[0].EmployeeID)
	assert.Empty(t, result.Conflicts)
}

func TestService_ImportBatch_WithConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := workday.NewMockRepository(ctrl)
	itx := workday.NewMockImportTx(ctrl)
	svc := workday.NewService(repo)

	employeeID := uuid.New()
	params := []workday.AddOrUpdateParams{
		{Date: "2024-01-10", Worked: true},
		{Date: "2024-01-11", Worked: true},
	}
	existing := &workday.WorkDay{ID: uuid.New(), EmployeeID: employeeID, Date: "2024-01-10", Worked: true, Paid: true}

	repo.EXPECT().BeginImport(gomock.Any(), employeeID).Return(itx, nil)
	itx.EXPECT().FindExisting(gomock.Any(), employeeID, gomock.Any()).Return([]*workday.WorkDay{existing}, nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), employeeID, params)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, existing, result.Conflicts[0].Existing)
	require.Len(t, result.New, 1)
	assert.Equal(t, "2024-01-11", result.New[0].Date)
}

func TestService_ImportBatch_InvalidRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := workday.NewService(workday.NewMockRepository(ctrl))

	_, err := svc.ImportBatch(context.Background(), uuid.New(), []workday.AddOrUpdateParams{{Date: "bad"}})
	assert.ErrorIs(t, err, isodate.ErrInvalid)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := workday.NewMockRepository(ctrl)
	itx := workday.NewMockImportTx(ctrl)
	svc := workday.NewService(repo)

	employeeID := uuid.New()

	repo.EXPECT().BeginImport(gomock.Any(), employeeID).Return(itx, nil)
	itx.EXPECT().FindExisting(gomock.Any(), employeeID, []string{"2024-01-10"}).Return(nil, nil)
	itx.EXPECT().UpsertWorkDays(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	wds, err := svc.CreateBatch(context.Background(), employeeID, []workday.AddOrUpdateParams{{Date: "2024-01-10", Worked: true}})
	require.NoError(t, err)
	require.Len(t, wds, 1)
	assert.Equal(t, employeeID, wds[0].EmployeeID)
}

func TestService_CreateBatch_RefusesPaidDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := workday.NewMockRepository(ctrl)
	itx := workday.NewMockImportTx(ctrl)
	svc := workday.NewService(repo)

	employeeID := uuid.New()
	paid := &workday.WorkDay{ID: uuid.New(), EmployeeID: employeeID, Date: "2024-01-11", Worked: true, Paid: true}

	repo.EXPECT().BeginImport(gomock.Any(), employeeID).Return(itx, nil)
	itx.EXPECT().FindExisting(gomock.Any(), employeeID, gomock.Any()).Return([]*workday.WorkDay{paid}, nil)
	itx.EXPECT().Rollback().Return(nil)

	wds, err := svc.CreateBatch(context.Background(), employeeID, []workday.AddOrUpdateParams{
		{Date: "2024-01-10", Worked: true},
		{Date: "2024-01-11", Worked: false},
	})
	assert.ErrorIs(t, err, workday.ErrPaid)
	assert.ErrorContains(t, err, "2024-01-11")
	assert.Nil(t, wds)
}
