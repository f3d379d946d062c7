package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/mydays/internal/importer"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workDays := importer.NewMockWorkDays(ctrl)
	svc := importer.NewService(workDays)

	employeeID := uuid.New()
	existing := &workday.WorkDay{ID: uuid.New(), EmployeeID: employeeID, Date: "2024-01-10", Worked: true}

	workDays.EXPECT().
		ImportBatch(gomock.Any(), employeeID, gomock.Len(2)).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, params []workday.AddOrUpdateParams) (*workday.ImportResult, error) {
			return &workday.ImportResult{
				New:       params[1:],
				Conflicts: []workday.Conflict{{Incoming: params[0], Existing: existing}},
			}, nil
		})

	out, err := svc.Import(context.Background(), employeeID, strings.NewReader("date\n2024-01-10\n2024-01-11\n"))
	require.NoError(t, err)
	assert.Len(t, out.Parsed.Rows, 2)
	require.Len(t, out.Import.Conflicts, 1)
	assert.Equal(t, existing, out.Import.Conflicts[0].Existing)
}

func TestService_Import_ParseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := importer.NewService(importer.NewMockWorkDays(ctrl))

	_, err := svc.Import(context.Background(), uuid.New(), strings.NewReader("date;amount\n2024-01-10;-1\n"))
	assert.ErrorIs(t, err, workday.ErrNegativeAmount)
}

func TestService_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workDays := importer.NewMockWorkDays(ctrl)
	svc := importer.NewService(workDays)

	employeeID := uuid.New()
	rows := []workday.AddOrUpdateParams{{Date: "2024-01-10", Worked: true}}

	workDays.EXPECT().CreateBatch(gomock.Any(), employeeID, rows).Return(nil, errors.New("conn reset"))

	_, err := svc.Confirm(context.Background(), employeeID, rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create work days")
}
