package reconcile_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

func kinds(diags []reconcile.Diagnostic) []reconcile.DiagnosticKind {
	out := make([]reconcile.DiagnosticKind, len(diags))
	for i, d := range diags {
		out[i] = d.Kind
	}

	return out
}

func assertOwedIdentity(t *testing.T, s reconcile.Stats) {
	t.Helper()
	assert.True(t, s.TotalOwed.Equal(s.TotalEarned.Sub(s.TotalPaid)), "owed %s earned %s paid %s", s.TotalOwed, s.TotalEarned, s.TotalPaid)
	assert.True(t, s.TotalEarned.Equal(s.TotalEarned.Round(reconcile.CurrencyPlaces)))
	assert.True(t, s.TotalPaid.Equal(s.TotalPaid.Round(reconcile.CurrencyPlaces)))
}

func TestAggregate_Empty(t *testing.T) {
	got := reconcile.Aggregate(e1(), nil, nil, nil)

	assert.Zero(t, got.TotalWorked)
	assert.Zero(t, got.TotalPaidDays)
	assert.True(t, got.TotalEarned.IsZero())
	assert.True(t, got.TotalPaid.IsZero())
	assert.True(t, got.TotalOwed.IsZero())
	assert.Equal(t, reconcile.PaidFromNone, got.PaidSource)
	assert.Empty(t, got.Diagnostics)
}

func TestAggregate_PaymentIsAuthoritative(t *testing.T) {
	w1 := &workday.WorkDay{ID: uuid.New(), EmployeeID: e1ID, Date: "2024-01-10", Worked: true, Paid: true}
	p := &payment.Payment{ID: uuid.New(), EmployeeID: e1ID, WorkDayIDs: []uuid.UUID{w1.ID}, Amount: dec("90"), Type: payment.TypeCash, Date: "2024-01-10"}

	got := reconcile.Aggregate(e1(), []*workday.WorkDay{w1}, []*payment.Payment{p}, nil)

	assert.Equal(t, 1, got.TotalWorked)
	assert.Equal(t, 1, got.TotalPaidDays)
	assertAmount(t, "100", got.TotalEarned)
	assertAmount(t, "90", got.TotalPaid)
	assertAmount(t, "10", got.TotalOwed)
	assert.Equal(t, reconcile.PaidFromPayments, got.PaidSource)
	assert.Empty(t, got.Diagnostics)
}

func TestAggregate_FallsBackToPaidWorkDays(t *testing.T) {
	days := []*workday.WorkDay{
		{ID: uuid.New(), EmployeeID: e1ID, Date: "2024-01-10", Worked: true, Paid: true},
		{ID: uuid.New(), EmployeeID: e1ID, Date: "2024-01-11", Worked: true},
	}

	got := reconcile.Aggregate(e1(), days, nil, nil)

	assertAmount(t, "200", got.TotalEarned)
	assertAmount(t, "100", got.TotalPaid)
	assertAmount(t, "100", got.TotalOwed)
	assert.Equal(t, reconcile.PaidFromWorkDays, got.PaidSource)
	require.Len(t, got.Diagnostics, 1)
	assert.Equal(t, reconcile.DiagPaidWithoutPayment, got.Diagnostics[0].Kind)
	assert.Equal(t, days[0].ID, got.Diagnostics[0].WorkDayID)
}

func TestAggregate_OwedIsNotClamped(t *testing.T) {
	w1 := &workday.WorkDay{ID: uuid.New(), EmployeeID: e1ID, Date: "2024-01-10", Worked: true, Paid: true}
	p := &payment.Payment{EmployeeID: e1ID, WorkDayIDs: []uuid.UUID{w1.ID}, Amount: dec("150"), Date: "2024-01-10"}

	got := reconcile.Aggregate(e1(), []*workday.WorkDay{w1}, []*payment.Payment{p}, nil)

	assertAmount(t, "-50", got.TotalOwed)
}

func TestAggregate_Range(t *testing.T) {
	days := []*workday.WorkDay{
		{ID: uuid.New(), EmployeeID: e1ID, Date: "2024-01-09", Worked: true},
		{ID: uuid.New(), EmployeeID: e1ID, Date: "2024-01-10", Worked: true},
		{ID: uuid.New(), EmployeeID: e1ID, Date: "2024-01-20", Worked: true},
		{ID: uuid.New(), EmployeeID: e1ID, Date: "2024-01-21", Worked: true},
	}
	payments := []*payment.Payment{
		{EmployeeID: e1ID, Amount: dec("40"), Date: "2024-01-05"},
		{EmployeeID: e1ID, Amount: dec("60"), Date: "2024-01-20"},
	}

	got := reconcile.Aggregate(e1(), days, payments, &reconcile.DateRange{Start: "2024-01-10", End: "2024-01-20"})

	assert.Equal(t, 2, got.TotalWorked)
	assertAmount(t, "200", got.TotalEarned)
	assertAmount(t, "60", got.TotalPaid)
	assertAmount(t, "140", got.TotalOwed)
}

func TestAggregate_IgnoresOtherEmployees(t *testing.T) {
	days := []*workday.WorkDay{
		{EmployeeID: e1ID, Date: "2024-01-10", Worked: true},
		{EmployeeID: e2ID, Date: "2024-01-10", Worked: true},
	}
	payments := []*payment.Payment{{EmployeeID: e2ID, Amount: dec("500"), Date: "2024-01-10"}}

	got := reconcile.Aggregate(e1(), days, payments, nil)

	assert.Equal(t, 1, got.TotalWorked)
	assert.True(t, got.TotalPaid.IsZero())
	assert.Equal(t, reconcile.PaidFromNone, got.PaidSource)
}

func TestAggregate_WageChangeAndCustomAmounts(t *testing.T) {
	days := []*workday.WorkDay{
		{EmployeeID: e1ID, Date: "2024-01-31", Worked: true},
		{EmployeeID: e1ID, Date: "2024-02-01", Worked: true},
		{EmployeeID: e1ID, Date: "2024-02-02", Worked: true, CustomAmount: new(decimal.Zero)},
		{EmployeeID: e1ID, Date: "2024-02-03", Worked: false, CustomAmount: new(dec("500"))},
	}

	got := reconcile.Aggregate(e1WithRaise(), days, nil, nil)

	assert.Equal(t, 3, got.TotalWorked)
	assertAmount(t, "180", got.TotalEarned)
}

func TestAggregate_Diagnostics(t *testing.T) {
	emp := employee.Employee{ID: e1ID, Name: "Ana", DailyWage: dec("100"), WageChangeDate: new("2024-02-01")}
	days := []*workday.WorkDay{
		{ID: uuid.New(), EmployeeID: e1ID, Date: "2024-01-10", Worked: true},
		{ID: uuid.New(), EmployeeID: e1ID, Date: "10/01/2024", Worked: true},
	}

	got := reconcile.Aggregate(emp, days, nil, nil)

	assert.Equal(t, 1, got.TotalWorked)
	assertAmount(t, "100", got.TotalEarned)
	assert.ElementsMatch(t, []reconcile.DiagnosticKind{
		reconcile.DiagInconsistentWageChange,
		reconcile.DiagInvalidDate,
	}, kinds(got.Diagnostics))
}

func TestAggregate_OwedIdentityHolds(t *testing.T) {
	type testCase struct {
		name     string
		amounts  []string
		payments []string
	}

	tests := []testCase{
		{name: "Thirds", amounts: []string{"33.333", "33.333", "33.334"}, payments: []string{"33.335"}},
		{name: "HalfCents", amounts: []string{"10.005", "10.005"}, payments: []string{"0.015", "0.015"}},
		{name: "Large", amounts: []string{"123456.789", "0.001"}, payments: []string{"99999.999"}},
		{name: "NoPayments", amounts: []string{"0.004", "0.004"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var days []*workday.WorkDay

			var payments []*payment.Payment

			for _, a := range tt.amounts {
				days = append(days, &workday.WorkDay{ID: uuid.New(), EmployeeID: e1ID, Date: "2024-01-10", Worked: true, CustomAmount: new(dec(a))})
			}

			for _, a := range tt.payments {
				payments = append(payments, &payment.Payment{EmployeeID: e1ID, Amount: dec(a), Date: "2024-01-10"})
			}

			assertOwedIdentity(t, reconcile.Aggregate(e1(), days, payments, nil))
		})
	}
}

func TestAggregateAll_UnknownEmployeeIsExcluded(t *testing.T) {
	ghost := uuid.New()
	emp := e1()
	days := []*workday.WorkDay{
		{ID: uuid.New(), EmployeeID: e1ID, Date: "2024-01-10", Worked: true},
		{ID: uuid.New(), EmployeeID: ghost, Date: "2024-01-10", Worked: true, Paid: true},
	}
	payments := []*payment.Payment{{ID: uuid.New(), EmployeeID: ghost, Amount: dec("70"), Date: "2024-01-10"}}

	got := reconcile.AggregateAll([]*employee.Employee{&emp}, days, payments, nil)

	assert.Equal(t, 1, got.TotalWorked)
	assert.Zero(t, got.TotalPaidDays)
	assertAmount(t, "100", got.TotalEarned)
	assert.True(t, got.TotalPaid.IsZero())
	assert.Equal(t, []reconcile.DiagnosticKind{reconcile.DiagUnknownEmployee, reconcile.DiagUnknownEmployee}, kinds(got.Diagnostics))
	assert.Equal(t, ghost, got.Diagnostics[0].EmployeeID)
}

func TestAggregateAll_SumsPerEmployee(t *testing.T) {
	a := e1WithRaise()
	b := employee.Employee{ID: e2ID, Name: "Bo", DailyWage: dec("50")}

	days := []*workday.WorkDay{
		{EmployeeID: e1ID, Date: "2024-01-10", Worked: true},
		// Before a's wage change date, but b has no wage change.
		{EmployeeID: e2ID, Date: "2024-01-10", Worked: true},
		{ID: uuid.New(), EmployeeID: e2ID, Date: "2024-01-11", Worked: true, Paid: true},
	}
	payments := []*payment.Payment{{EmployeeID: e1ID, Amount: dec("30"), Date: "2024-01-12"}}

	got := reconcile.AggregateAll([]*employee.Employee{&a, &b}, days, payments, nil)

	assert.Equal(t, 3, got.TotalWorked)
	assertAmount(t, "180", got.TotalEarned)
	assertAmount(t, "80", got.TotalPaid)
	assertAmount(t, "100", got.TotalOwed)
	assert.Equal(t, reconcile.PaidFromMixed, got.PaidSource)
	assertOwedIdentity(t, got)

	byEmp := reconcile.AggregateByEmployee([]*employee.Employee{&a, &b}, days, payments, nil)
	require.Len(t, byEmp, 2)
	assertAmount(t, "80", byEmp[e1ID].TotalEarned)
	assertAmount(t, "100", byEmp[e2ID].TotalEarned)
	assert.Equal(t, reconcile.PaidFromPayments, byEmp[e1ID].PaidSource)
	assert.Equal(t, reconcile.PaidFromWorkDays, byEmp[e2ID].PaidSource)
}

func TestDateRange(t *testing.T) {
	var open *reconcile.DateRange

	assert.True(t, open.Contains("1999-01-01"))
	assert.NoError(t, open.Validate())

	rng := &reconcile.DateRange{Start: "2024-01-10", End: "2024-01-20"}
	assert.True(t, rng.Contains("2024-01-10"))
	assert.True(t, rng.Contains("2024-01-20"))
	assert.False(t, rng.Contains("2024-01-21"))
	assert.NoError(t, rng.Validate())

	assert.Error(t, (&reconcile.DateRange{Start: "2024-01-20", End: "2024-01-10"}).Validate())
	assert.Error(t, (&reconcile.DateRange{Start: "2024-1-1"}).Validate())
	assert.True(t, (&reconcile.DateRange{End: "2024-01-01"}).Contains("1900-01-01"))
}
