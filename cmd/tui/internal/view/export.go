package view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
	"github.com/MrJamesThe3rd/mydays/internal/report"
)

const exportTimeout = 2 * time.Minute

var errNoEmployees = errors.New("no employees yet")

type exportState int

const (
	exportStateEmployee exportState = iota
	exportStateTimeframe
	exportStateOptions
	exportStateExporting
	exportStateResult
)

// exportFields is shared by pointer so huh bindings survive model copies.
type exportFields struct {
	employeeID uuid.UUID
	format     report.Format
	path       string
}

type ExportModel struct {
	employeeService *employee.Service
	reportService   *report.Service

	state           exportState
	err             error
	timeframePicker TimeframePicker
	rng             *reconcile.DateRange

	form    *huh.Form
	fields  *exportFields
	spinner spinner.Model

	path    string
	summary string
}

func NewExportModel(empSvc *employee.Service, reportSvc *report.Service, outputDir string) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ExportModel{
		employeeService: empSvc,
		reportService:   reportSvc,
		state:           exportStateEmployee,
		timeframePicker: NewTimeframePicker(TimeframeThisWeek),
		fields:          &exportFields{format: report.FormatPDF, path: outputDir},
		spinner:         s,
	}
}

func (m ExportModel) Title() string { return "Export Report" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return loadEmployeesCmd(m.employeeService)
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case employeesLoadedMsg:
		if msg.err == nil && len(msg.employees) == 0 {
			msg.err = errNoEmployees
		}

		if msg.err != nil {
			m.state = exportStateResult
			m.err = msg.err

			return m, nil
		}

		m.form = huh.NewForm(
			huh.NewGroup(employeeSelect(msg.employees, &m.fields.employeeID)),
		).WithWidth(50).WithShowHelp(false)

		return m, m.form.Init()

	case TimeframeSelectedMsg:
		m.rng = msg.Range
		m.form = m.buildOptionsForm()
		m.state = exportStateOptions

		return m, m.form.Init()
	}

	switch m.state {
	case exportStateEmployee:
		return m.updateEmployee(msg)
	case exportStateTimeframe:
		return m.updateTimeframe(msg)
	case exportStateOptions:
		return m.updateOptions(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ExportModel) updateEmployee(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = exportStateTimeframe
	m.timeframePicker.Reset()

	return m, nil
}

func (m ExportModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.timeframePicker, cmd = m.timeframePicker.Update(msg)

	return m, cmd
}

func (m ExportModel) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = exportStateTimeframe
		m.timeframePicker.Reset()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = exportStateExporting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(*m.fields, m.rng))
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		m.state = exportStateResult
		m.err = result.err
		m.path = result.path
		m.summary = result.summary

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m ExportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	return m, nil
}

func (m ExportModel) buildOptionsForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[report.Format]().
				Key("format").
				Title("Format").
				Options(
					huh.NewOption("PDF", report.FormatPDF),
					huh.NewOption("CSV", report.FormatCSV),
					huh.NewOption("HTML", report.FormatHTML),
					huh.NewOption("Text", report.FormatText),
				).
				Value(&m.fields.format),
			huh.NewInput().
				Key("path").
				Title("Output Path").
				Description("Directory will be created if it doesn't exist").
				Placeholder(".").
				Value(&m.fields.path),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateEmployee:
		if m.form == nil {
			return lipgloss.NewStyle().Padding(1).Render("Loading employees...")
		}

		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateTimeframe:
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())

	case exportStateOptions:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Building report...", m.spinner.View()),
		)

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to go back)",
		)
	}

	header := successStyle.Bold(true).Render("Export Complete!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			"Written to "+m.path,
			"",
			m.summary,
		),
	)
}

type exportResultMsg struct {
	path    string
	summary string
	err     error
}

func (m ExportModel) runExportCmd(fields exportFields, rng *reconcile.DateRange) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		path, err := m.reportService.Export(ctx, fields.employeeID, rng, fields.format, fields.path)
		if err != nil {
			return exportResultMsg{err: err}
		}

		r, err := m.reportService.Build(ctx, fields.employeeID, rng)
		if err != nil {
			return exportResultMsg{err: err}
		}

		return exportResultMsg{path: path, summary: r.Summary()}
	}
}
