// Package report renders an employee's work days and payments for export.
// Every amount and status is taken from reconcile; writers only format.
package report

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
)

var ErrUnknownFormat = errors.New("unknown report format")

type Format string

const (
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
	FormatText Format = "txt"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatCSV, FormatPDF, FormatHTML, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

type Row struct {
	Date   string
	Status reconcile.Status
	Worked bool
	Paid   bool
	Amount decimal.Decimal
	Notes  string
}

type PaymentRow struct {
	Date   string
	Type   payment.Type
	Amount decimal.Decimal
	Days   int
	Notes  string
}

type Report struct {
	Employee    employee.Employee
	Range       reconcile.DateRange
	GeneratedAt time.Time
	Rows        []Row
	Payments    []PaymentRow
	Stats       reconcile.Stats
}

// Build collects the employee's records inside rng, ordered by date.
func Build(snap *reconcile.Snapshot, employeeID uuid.UUID, rng *reconcile.DateRange) (*Report, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	emp, ok := snap.Employee(employeeID)
	if !ok {
		return nil, employee.ErrNotFound
	}

	r := &Report{
		Employee:    *emp,
		GeneratedAt: snap.TakenAt(),
	}

	if rng != nil {
		r.Range = *rng
	}

	for _, wd := range snap.WorkDaysOf(employeeID) {
		if !rng.Contains(wd.Date) {
			continue
		}

		status, err := reconcile.Classify(wd.Date, wd, snap.TakenAt())
		if err != nil {
			continue
		}

		r.Rows = append(r.Rows, Row{
			Date:   wd.Date,
			Status: status,
			Worked: wd.Worked,
			Paid:   wd.Paid,
			Amount: reconcile.ResolveAmount(*wd, *emp),
			Notes:  wd.Notes,
		})
	}

	for _, p := range snap.PaymentsOf(employeeID) {
		if !rng.Contains(p.Date) {
			continue
		}

		r.Payments = append(r.Payments, PaymentRow{
			Date:   p.Date,
			Type:   p.Type,
			Amount: p.Amount,
			Days:   len(p.WorkDayIDs),
			Notes:  p.Notes,
		})
	}

	slices.SortStableFunc(r.Rows, func(a, b Row) int { return cmp.Compare(a.Date, b.Date) })
	slices.SortStableFunc(r.Payments, func(a, b PaymentRow) int { return cmp.Compare(a.Date, b.Date) })

	r.Stats, _ = snap.EmployeeStats(employeeID, rng)

	return r, nil
}

// Period describes the range for headings.
func (r *Report) Period() string {
	switch {
	case r.Range.Start == "" && r.Range.End == "":
		return "all time"
	case r.Range.Start == "":
		return "until " + r.Range.End
	case r.Range.End == "":
		return "from " + r.Range.Start
	default:
		return r.Range.Start + " to " + r.Range.End
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(reconcile.CurrencyPlaces)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// Summary renders one line per day, ready to paste into a message.
func (r *Report) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s, %s\n", r.Employee.Name, r.Period())

	for _, row := range r.Rows {
		fmt.Fprintf(&sb, "* %s | %s | %s", row.Date, row.Status, money(row.Amount))

		if row.Notes != "" {
			fmt.Fprintf(&sb, " | %s", row.Notes)
		}

		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Worked: %d, earned: %s, paid: %s, owed: %s\n",
		r.Stats.TotalWorked, money(r.Stats.TotalEarned), money(r.Stats.TotalPaid), money(r.Stats.TotalOwed))

	return sb.String()
}

// Filename builds a file name like "20240101_20240131_Ana_Silva.pdf".
func (r *Report) Filename(f Format) string {
	safeName := strings.Map(func(c rune) rune {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_' {
			return c
		}

		return '_'
	}, r.Employee.Name)

	period := "all"
	if r.Range.Start != "" || r.Range.End != "" {
		period = strings.ReplaceAll(cmp.Or(r.Range.Start, "start"), "-", "") + "_" +
			strings.ReplaceAll(cmp.Or(r.Range.End, "end"), "-", "")
	}

	return fmt.Sprintf("%s_%s.%s", period, safeName, f)
}
