package reconcile_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

func TestUnmarkImpact(t *testing.T) {
	w1, w2, w3, w4 := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	shared := &payment.Payment{ID: uuid.New(), WorkDayIDs: []uuid.UUID{w1, w2, w3}, Amount: dec("300"), Type: payment.TypeCash, Date: "2024-01-15"}
	single := &payment.Payment{ID: uuid.New(), WorkDayIDs: []uuid.UUID{w4}, Amount: dec("100"), Type: payment.TypeBankTransfer, Date: "2024-01-16"}
	other := &payment.Payment{ID: uuid.New(), WorkDayIDs: []uuid.UUID{uuid.New()}, Amount: dec("100"), Date: "2024-01-17"}

	impacts := reconcile.UnmarkImpact([]uuid.UUID{w2, w4}, []*payment.Payment{shared, single, other})
	require.Len(t, impacts, 2)

	assert.Equal(t, shared, impacts[0].Payment)
	assert.Equal(t, []uuid.UUID{w2}, impacts[0].Removed)
	assert.Equal(t, []uuid.UUID{w1, w3}, impacts[0].Remaining)
	assert.False(t, impacts[0].Emptied())

	assert.Equal(t, single, impacts[1].Payment)
	assert.True(t, impacts[1].Emptied())

	assert.Empty(t, reconcile.UnmarkImpact([]uuid.UUID{uuid.New()}, []*payment.Payment{shared}))
}

func TestRemainingAmount(t *testing.T) {
	p := payment.Payment{EmployeeID: e1ID, Amount: dec("250")}

	removed := []*workday.WorkDay{{EmployeeID: e1ID, Date: "2024-01-10"}}
	assertAmount(t, "170", reconcile.RemainingAmount(p, e1WithRaise(), removed))

	removed = append(removed, &workday.WorkDay{EmployeeID: e1ID, Date: "2024-03-10"}, &workday.WorkDay{EmployeeID: e1ID, Date: "2024-03-11"})
	assert.True(t, reconcile.RemainingAmount(p, e1WithRaise(), removed).IsZero())
}

func TestConfirmationMessage(t *testing.T) {
	assert.Empty(t, reconcile.ConfirmationMessage(nil))

	w1, w2 := uuid.New(), uuid.New()
	p := &payment.Payment{WorkDayIDs: []uuid.UUID{w1, w2}, Amount: dec("190"), Type: payment.TypeCash, Date: "2024-01-15"}

	msg := reconcile.ConfirmationMessage(reconcile.UnmarkImpact([]uuid.UUID{w1}, []*payment.Payment{p}))

	assert.Contains(t, msg, "1 work day is already covered by 1 payment.")
	assert.Contains(t, msg, "cash payment of 190.00 on 2024-01-15 covers 2 days; 1 would be removed")

	msg = reconcile.ConfirmationMessage(reconcile.UnmarkImpact([]uuid.UUID{w1, w2}, []*payment.Payment{p}))
	assert.Contains(t, msg, "2 work days are already covered")
	assert.Contains(t, msg, "left with no days")
}
