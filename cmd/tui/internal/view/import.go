package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/importer"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateEmployee importState = iota
	importStateFilePick
	importStateImporting
	importStateConflicts
	importStateResult
)

type ImportModel struct {
	employeeService *employee.Service
	importService   *importer.Service

	state      importState
	form       *huh.Form
	employeeID *uuid.UUID
	filePicker filepicker.Model

	newRows      []workday.AddOrUpdateParams
	conflicts    []workday.Conflict
	conflictList list.Model
	selected     map[int]bool

	skipped []importer.Skipped
	status  string
	err     error
}

func NewImportModel(empSvc *employee.Service, impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		employeeService: empSvc,
		importService:   impSvc,
		employeeID:      new(uuid.UUID),
		filePicker:      fp,
		selected:        make(map[int]bool),
	}
}

func (m ImportModel) Title() string { return "Import Work Days" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateConflicts {
		return "Space: toggle overwrite | a: all | n: none | Enter: confirm | Esc: cancel"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return loadEmployeesCmd(m.employeeService)
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case employeesLoadedMsg:
		if msg.err == nil && len(msg.employees) == 0 {
			msg.err = errNoEmployees
		}

		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.form = huh.NewForm(
			huh.NewGroup(employeeSelect(msg.employees, m.employeeID)),
		).WithWidth(50).WithShowHelp(false)

		return m, m.form.Init()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateConflicts {
			return m.updateConflicts(msg)
		}

	case importResultMsg:
		return m.handleImportResult(msg)

	case confirmResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d work days.", msg.count)

		return m, nil
	}

	switch m.state {
	case importStateEmployee:
		return m.updateEmployee(msg)
	case importStateFilePick:
		return m.updateFilePick(msg)
	}

	return m, nil
}

func (m ImportModel) handleImportResult(msg importResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state = importStateResult
		m.err = msg.err
		m.status = fmt.Sprintf("Error: %v", msg.err)

		return m, nil
	}

	m.skipped = msg.outcome.Parsed.Skipped
	result := msg.outcome.Import

	if len(result.Conflicts) == 0 {
		m.state = importStateResult
		m.status = fmt.Sprintf("Imported %d work days (%s, %s).",
			len(result.Imported), msg.outcome.Parsed.Profile, msg.outcome.Parsed.Charset)

		return m, nil
	}

	m.newRows = result.New
	m.conflicts = result.Conflicts
	m.selected = make(map[int]bool)
	m.state = importStateConflicts

	items := make([]list.Item, len(m.conflicts))
	for i, c := range m.conflicts {
		items[i] = conflictItem{conflict: c, index: i}
	}

	delegate := conflictDelegate{selected: &m.selected}
	m.conflictList = list.New(items, delegate, 80, 20)
	m.conflictList.Title = "Dates already recorded"
	m.conflictList.SetShowStatusBar(false)
	m.conflictList.SetFilteringEnabled(false)
	m.conflictList.SetShowHelp(false)

	return m, nil
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick, importStateResult, importStateConflicts:
		m.state = importStateEmployee
		m.form = nil
		m.err = nil
		m.status = ""
		m.skipped = nil
		m.conflicts = nil
		m.newRows = nil
		m.selected = make(map[int]bool)

		return m, loadEmployeesCmd(m.employeeService)
	}

	return m, Back
}

func (m ImportModel) updateEmployee(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	m.state = importStateFilePick

	return m, m.filePicker.Init()
}

func (m ImportModel) updateFilePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(*m.employeeID, path)
	}

	return m, cmd
}

func (m ImportModel) updateConflicts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		idx := m.conflictList.Index()
		m.selected[idx] = !m.selected[idx]

		return m, nil
	case "a":
		for i := range m.conflicts {
			m.selected[i] = true
		}

		return m, nil
	case "n":
		for i := range m.conflicts {
			m.selected[i] = false
		}

		return m, nil
	case "enter":
		return m, m.confirmCmd()
	}

	var cmd tea.Cmd
	m.conflictList, cmd = m.conflictList.Update(msg)

	return m, cmd
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateEmployee:
		if m.form == nil {
			return lipgloss.NewStyle().Padding(2).Render("Loading employees...")
		}

		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select work day sheet to import:\n\n%s", m.filePicker.View()),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateConflicts:
		return lipgloss.NewStyle().Padding(1).Render(m.conflictList.View())
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(errorStyle.Render(m.status) + "\n\n(Esc to go back)")
	}

	var b strings.Builder

	b.WriteString(successStyle.Render(m.status))

	if len(m.skipped) > 0 {
		fmt.Fprintf(&b, "\n\nSkipped %d rows:\n", len(m.skipped))

		for _, s := range m.skipped {
			fmt.Fprintf(&b, "  line %d: %s\n", s.Row, s.Reason)
		}
	}

	b.WriteString("\n\n(Esc to go back)")

	return style.Render(b.String())
}

// Messages

type importResultMsg struct {
	outcome *importer.Outcome
	err     error
}

type confirmResultMsg struct {
	count int
	err   error
}

func (m ImportModel) importCmd(employeeID uuid.UUID, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		outcome, err := m.importService.Import(ctx, employeeID, f)
		if err != nil {
			return importResultMsg{err: err}
		}

		return importResultMsg{outcome: outcome}
	}
}

// confirmCmd stores the new rows plus the conflicting rows picked for
// overwrite. Unpicked conflicts keep their existing record.
func (m ImportModel) confirmCmd() tea.Cmd {
	employeeID := *m.employeeID
	rows := append([]workday.AddOrUpdateParams(nil), m.newRows...)

	for i, c := range m.conflicts {
		if m.selected[i] {
			rows = append(rows, c.Incoming)
		}
	}

	return func() tea.Msg {
		if len(rows) == 0 {
			return confirmResultMsg{}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		wds, err := m.importService.Confirm(ctx, employeeID, rows)
		if err != nil {
			return confirmResultMsg{err: err}
		}

		return confirmResultMsg{count: len(wds)}
	}
}

// Conflict list item

type conflictItem struct {
	conflict workday.Conflict
	index    int
}

func (i conflictItem) Title() string       { return "" }
func (i conflictItem) Description() string { return "" }
func (i conflictItem) FilterValue() string { return "" }

// Conflict list delegate

type conflictDelegate struct {
	selected *map[int]bool
}

func (d conflictDelegate) Height() int                             { return 3 }
func (d conflictDelegate) Spacing() int                            { return 0 }
func (d conflictDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d conflictDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(conflictItem)
	if !ok {
		return
	}

	checkbox := "[ ]"
	if (*d.selected)[item.index] {
		checkbox = "[x]"
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	in := item.conflict.Incoming

	fmt.Fprintf(w, "%s%s %s\n      Existing: %s\n",
		cursor, checkbox,
		describeDay(in.Date, in.Worked, in.CustomAmount),
		describeExisting(item.conflict.Existing),
	)
}

func describeDay(date string, worked bool, amount *decimal.Decimal) string {
	state := "not worked"
	if worked {
		state = "worked"
	}

	value := "wage"
	if amount != nil {
		value = FormatMoney(*amount)
	}

	return fmt.Sprintf("%s  %-10s  %s", date, state, value)
}

func describeExisting(wd *workday.WorkDay) string {
	if wd == nil {
		return "-"
	}

	s := describeDay(wd.Date, wd.Worked, wd.CustomAmount)
	if wd.Paid {
		s += " [paid]"
	}

	return s
}
