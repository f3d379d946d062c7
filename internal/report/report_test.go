package report_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
	"github.com/MrJamesThe3rd/mydays/internal/report"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func snapshot() (*reconcile.Snapshot, uuid.UUID) {
	emp := &employee.Employee{
		ID:             uuid.New(),
		Name:           "José <Silva>",
		DailyWage:      dec("100"),
		WageChangeDate: new("2024-01-11"),
		PreviousWage:   new(dec("80")),
	}

	w1 := &workday.WorkDay{ID: uuid.New(), EmployeeID: emp.ID, Date: "2024-01-10", Worked: true, Paid: true, Notes: "morning, early"}
	w2 := &workday.WorkDay{ID: uuid.New(), EmployeeID: emp.ID, Date: "2024-01-12", Worked: true}
	w3 := &workday.WorkDay{ID: uuid.New(), EmployeeID: emp.ID, Date: "2024-02-01", Worked: true}
	other := &workday.WorkDay{ID: uuid.New(), EmployeeID: uuid.New(), Date: "2024-01-10", Worked: true}

	p := &payment.Payment{ID: uuid.New(), EmployeeID: emp.ID, WorkDayIDs: []uuid.UUID{w1.ID}, Amount: dec("75"), Type: payment.TypeCash, Date: "2024-01-10"}

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	return reconcile.NewSnapshot([]*employee.Employee{emp}, []*workday.WorkDay{w2, w1, w3, other}, []*payment.Payment{p}, now), emp.ID
}

var january = &reconcile.DateRange{Start: "2024-01-01", End: "2024-01-31"}

func TestBuild(t *testing.T) {
	snap, id := snapshot()

	r, err := report.Build(snap, id, january)
	require.NoError(t, err)

	require.Len(t, r.Rows, 2)
	assert.Equal(t, "2024-01-10", r.Rows[0].Date)
	assert.Equal(t, reconcile.StatusWorkedPaid, r.Rows[0].Status)
	assert.True(t, dec("80").Equal(r.Rows[0].Amount))
	assert.Equal(t, reconcile.StatusWorkedUnpaid, r.Rows[1].Status)
	assert.True(t, dec("100").Equal(r.Rows[1].Amount))

	require.Len(t, r.Payments, 1)
	assert.True(t, dec("180").Equal(r.Stats.TotalEarned))
	assert.True(t, dec("75").Equal(r.Stats.TotalPaid))
	assert.True(t, dec("105").Equal(r.Stats.TotalOwed))

	_, err = report.Build(snap, uuid.New(), nil)
	assert.ErrorIs(t, err, employee.ErrNotFound)
}

func TestReport_WriteCSV(t *testing.T) {
	snap, id := snapshot()
	r, err := report.Build(snap, id, january)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"date", "status", "worked", "paid", "amount", "notes"}, records[0])
	assert.Equal(t, []string{"2024-01-10", "worked-paid", "true", "true", "80.00", "morning, early"}, records[1])
}

func TestReport_WritePDF(t *testing.T) {
	snap, id := snapshot()
	r, err := report.Build(snap, id, january)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WritePDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestReport_WriteHTML(t *testing.T) {
	snap, id := snapshot()
	r, err := report.Build(snap, id, january)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteHTML(&buf))

	out := buf.String()
	assert.Contains(t, out, "José &lt;Silva&gt;")
	assert.NotContains(t, out, "<Silva>")
	assert.Contains(t, out, "Owed: 105.00")
}

func TestReport_Summary(t *testing.T) {
	snap, id := snapshot()
	r, err := report.Build(snap, id, january)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(r.Summary()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "José <Silva>, 2024-01-01 to 2024-01-31", lines[0])
	assert.Equal(t, "* 2024-01-12 | worked-unpaid | 100.00", lines[2])
	assert.Equal(t, "Worked: 2, earned: 180.00, paid: 75.00, owed: 105.00", lines[3])
}

func TestReport_Filename(t *testing.T) {
	snap, id := snapshot()

	r, err := report.Build(snap, id, january)
	require.NoError(t, err)
	assert.Equal(t, "20240101_20240131_Jos___Silva_.pdf", r.Filename(report.FormatPDF))

	r, err = report.Build(snap, id, nil)
	require.NoError(t, err)
	assert.Equal(t, "all_Jos___Silva_.csv", r.Filename(report.FormatCSV))
	assert.Equal(t, "all time", r.Period())
}

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat(".PDF")
	require.NoError(t, err)
	assert.Equal(t, report.FormatPDF, f)

	_, err = report.ParseFormat("docx")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

type staticSnapshots struct {
	snap *reconcile.Snapshot
}

func (s staticSnapshots) Snapshot(context.Context, *uuid.UUID) (*reconcile.Snapshot, error) {
	return s.snap, nil
}

func TestService_Export(t *testing.T) {
	snap, id := snapshot()
	dir := filepath.Join(t.TempDir(), "out")

	path, err := report.NewService(staticSnapshots{snap}).Export(context.Background(), id, january, report.FormatCSV, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "date,status,worked,paid,amount,notes\n"))
}
