package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
	"github.com/MrJamesThe3rd/mydays/internal/summary"
)

// OpenCalendarMsg asks the parent to show the month grid of an employee.
type OpenCalendarMsg struct {
	EmployeeID uuid.UUID
}

// OpenPayMsg asks the parent to start a payment for an employee.
type OpenPayMsg struct {
	EmployeeID uuid.UUID
}

var employeeDateFilters = []Timeframe{TimeframeAll, TimeframeThisMonth, TimeframeLastMonth, TimeframeThisWeek}

type employeesState int

const (
	employeesStateBrowse employeesState = iota
	employeesStateCreate
)

// newEmployeeFields is shared by pointer so huh bindings survive model copies.
type newEmployeeFields struct {
	name string
	wage string
}

type EmployeesModel struct {
	employeeService *employee.Service
	summaryService  *summary.Service

	state     employeesState
	table     table.Model
	rows      []summary.EmployeeSummary
	total     reconcile.Stats
	form      *huh.Form
	newFields *newEmployeeFields

	dateFilterIdx int
	now           func() time.Time

	loading bool
	err     error
	status  string
}

func NewEmployeesModel(empSvc *employee.Service, summarySvc *summary.Service) EmployeesModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Wage", Width: 10},
		{Title: "Worked", Width: 8},
		{Title: "Paid days", Width: 10},
		{Title: "Earned", Width: 12},
		{Title: "Paid", Width: 12},
		{Title: "Owed", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return EmployeesModel{
		employeeService: empSvc,
		summaryService:  summarySvc,
		table:           t,
		newFields:       &newEmployeeFields{},
		now:             time.Now,
		loading:         true,
	}
}

func (m EmployeesModel) Title() string { return "Employees" }

func (m EmployeesModel) ShortHelp() string {
	if m.state == employeesStateCreate {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | Enter: calendar | p: pay | n: new | d: date filter | r: refresh"
}

func (m EmployeesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m EmployeesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadEmployeesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.rows = msg.rows
		m.total = msg.total
		m.refreshTable()

		return m, nil

	case employeeSavedMsg:
		m.state = employeesStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = "Added " + msg.name

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-12, 5))
		return m, nil
	}

	switch m.state {
	case employeesStateBrowse:
		return m.updateBrowse(msg)
	case employeesStateCreate:
		return m.updateCreate(msg)
	}

	return m, nil
}

func (m EmployeesModel) selectedID() (uuid.UUID, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return uuid.Nil, false
	}

	return m.rows[idx].Employee.ID, true
}

func (m EmployeesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % len(employeeDateFilters)
			m.loading = true

			return m, m.loadCmd()
		case "n":
			return m.enterCreateMode()
		case "enter":
			if id, ok := m.selectedID(); ok {
				return m, func() tea.Msg { return OpenCalendarMsg{EmployeeID: id} }
			}

			return m, nil
		case "p":
			if id, ok := m.selectedID(); ok {
				return m, func() tea.Msg { return OpenPayMsg{EmployeeID: id} }
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func validateMoney(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("not a number")
	}

	if d.IsNegative() {
		return errors.New("must not be negative")
	}

	return nil
}

func (m EmployeesModel) enterCreateMode() (tea.Model, tea.Cmd) {
	*m.newFields = newEmployeeFields{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.newFields.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name cannot be empty")
					}

					return nil
				}),
			huh.NewInput().
				Key("wage").
				Title("Daily wage").
				Placeholder("0.00").
				Value(&m.newFields.wage).
				Validate(validateMoney),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = employeesStateCreate
	m.table.Blur()

	return m, m.form.Init()
}

func (m EmployeesModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = employeesStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.createCmd(*m.newFields)
}

func (m EmployeesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading employees...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf(
		"Filter: [d] Date: %s | Earned %s | Paid %s | Owed %s",
		activeStyle(employeeDateFilters[m.dateFilterIdx].String()),
		FormatMoney(m.total.TotalEarned),
		FormatMoney(m.total.TotalPaid),
		owedStyle.Render(FormatMoney(m.total.TotalOwed)),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if n := len(m.total.Diagnostics); n > 0 {
		content += "\n" + errorStyle.Render(fmt.Sprintf("%d data problems found, see the api diagnostics", n))
	}

	if m.state == employeesStateCreate && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("New Employee\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *EmployeesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.rows))
	for _, r := range m.rows {
		rows = append(rows, table.Row{
			r.Employee.Name,
			FormatMoney(r.Employee.DailyWage),
			strconv.Itoa(r.Stats.TotalWorked),
			strconv.Itoa(r.Stats.TotalPaidDays),
			FormatMoney(r.Stats.TotalEarned),
			FormatMoney(r.Stats.TotalPaid),
			FormatMoney(r.Stats.TotalOwed),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadEmployeesMsg struct {
	rows  []summary.EmployeeSummary
	total reconcile.Stats
	err   error
}

func (m EmployeesModel) loadCmd() tea.Cmd {
	rng := employeeDateFilters[m.dateFilterIdx].Range(m.now())

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rows, err := m.summaryService.EmployeeStatsList(ctx, rng)
		if err != nil {
			return loadEmployeesMsg{err: err}
		}

		total, err := m.summaryService.BusinessStats(ctx, rng)
		if err != nil {
			return loadEmployeesMsg{err: err}
		}

		return loadEmployeesMsg{rows: rows, total: total}
	}
}

type employeeSavedMsg struct {
	name string
	err  error
}

func (m EmployeesModel) createCmd(fields newEmployeeFields) tea.Cmd {
	return func() tea.Msg {
		wage, err := decimal.NewFromString(strings.TrimSpace(fields.wage))
		if err != nil {
			return employeeSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		e, err := m.employeeService.Create(ctx, employee.CreateParams{Name: fields.name, DailyWage: wage})
		if err != nil {
			return employeeSavedMsg{err: err}
		}

		return employeeSavedMsg{name: e.Name}
	}
}
