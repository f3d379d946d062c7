package report

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// Write renders r in format f.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatCSV:
		return r.WriteCSV(w)
	case FormatPDF:
		return r.WritePDF(w)
	case FormatHTML:
		return r.WriteHTML(w)
	case FormatText:
		_, err := io.WriteString(w, r.Summary())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

var csvHeader = []string{"date", "status", "worked", "paid", "amount", "notes"}

func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, row := range r.Rows {
		record := []string{
			row.Date,
			row.Status.String(),
			strconv.FormatBool(row.Worked),
			strconv.FormatBool(row.Paid),
			money(row.Amount),
			row.Notes,
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func (r *Report) WritePDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, tr("Work report"))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Employee: %s", r.Employee.Name)))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Period: %s", r.Period())))
	pdf.Ln(10)

	widths := []float64{28, 34, 18, 18, 26, 66}

	pdf.SetFont("Helvetica", "B", 10)

	for i, h := range csvHeader {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}

	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)

	for _, row := range r.Rows {
		cells := []string{row.Date, row.Status.String(), yesNo(row.Worked), yesNo(row.Paid), money(row.Amount), row.Notes}
		for i, c := range cells {
			align := "L"
			if i == 4 {
				align = "R"
			}

			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, false, 0, "")
		}

		pdf.Ln(-1)
	}

	if len(r.Payments) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Payments")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)

		for _, p := range r.Payments {
			pdf.Cell(0, 6, tr(fmt.Sprintf("%s  %s  %s  (%d days)  %s", p.Date, p.Type, money(p.Amount), p.Days, p.Notes)))
			pdf.Ln(6)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Earned: %s", money(r.Stats.TotalEarned)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Paid: %s", money(r.Stats.TotalPaid)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Owed: %s", money(r.Stats.TotalOwed)))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}

	return nil
}

var htmlReport = template.Must(template.New("report").Funcs(template.FuncMap{
	"money": money,
	"yesNo": yesNo,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Employee.Name}}: {{.Period}}</title>
<style>
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 4px 8px; }
td.amount { text-align: right; }
tr.worked-unpaid { background: #fff4e5; }
tr.worked-paid { background: #e8f5e9; }
</style>
</head>
<body>
<h1>{{.Employee.Name}}</h1>
<p>Period: {{.Period}}</p>
<table>
<tr><th>Date</th><th>Status</th><th>Worked</th><th>Paid</th><th>Amount</th><th>Notes</th></tr>
{{range .Rows}}<tr class="{{.Status}}"><td>{{.Date}}</td><td>{{.Status}}</td><td>{{yesNo .Worked}}</td><td>{{yesNo .Paid}}</td><td class="amount">{{money .Amount}}</td><td>{{.Notes}}</td></tr>
{{end}}</table>
{{if .Payments}}<h2>Payments</h2>
<table>
<tr><th>Date</th><th>Type</th><th>Amount</th><th>Days</th><th>Notes</th></tr>
{{range .Payments}}<tr><td>{{.Date}}</td><td>{{.Type}}</td><td class="amount">{{money .Amount}}</td><td>{{.Days}}</td><td>{{.Notes}}</td></tr>
{{end}}</table>
{{end}}<p>Worked: {{.Stats.TotalWorked}}. Earned: {{money .Stats.TotalEarned}}. Paid: {{money .Stats.TotalPaid}}. Owed: {{money .Stats.TotalOwed}}.</p>
</body>
</html>
`))

func (r *Report) WriteHTML(w io.Writer) error {
	if err := htmlReport.Execute(w, r); err != nil {
		return fmt.Errorf("writing html: %w", err)
	}

	return nil
}
