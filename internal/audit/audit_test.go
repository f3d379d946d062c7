package audit_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/mydays/internal/audit"
	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
)

func TestAuditor_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := audit.NewMockSource(ctrl)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	workDayID := uuid.New()
	diags := []reconcile.Diagnostic{{
		Kind:       reconcile.DiagPaidWithoutPayment,
		EmployeeID: uuid.New(),
		WorkDayID:  workDayID,
		Message:    "work day is paid but no payment covers it",
	}}

	source.EXPECT().Diagnostics(gomock.Any()).Return(diags, nil)

	got, err := audit.New(source, "", logger).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, diags, got)

	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"kind":"paid_without_payment"`)
	assert.Contains(t, out, workDayID.String())
	assert.NotContains(t, out, "payment_id")
	assert.Contains(t, out, `"diagnostics":1`)
}

func TestAuditor_RunOnce_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := audit.NewMockSource(ctrl)
	source.EXPECT().Diagnostics(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := audit.New(source, "", slog.New(slog.DiscardHandler)).RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load diagnostics")
}

func TestAuditor_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := slog.New(slog.DiscardHandler)

	bad := audit.New(audit.NewMockSource(ctrl), "not a schedule", logger)
	assert.Error(t, bad.Start())

	good := audit.New(audit.NewMockSource(ctrl), audit.DefaultSchedule, logger)
	require.NoError(t, good.Start())
	good.Stop()
}
