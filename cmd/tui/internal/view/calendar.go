package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mydays/internal/summary"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

var (
	cursorStyle = lipgloss.NewStyle().Underline(true).Bold(true)
	weekdays    = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
)

// CalendarModel shows one month of an employee's days. The cursor is the
// zero based index into the month's days.
type CalendarModel struct {
	summaryService *summary.Service
	workDayService *workday.Service

	employeeID uuid.UUID
	year       int
	month      time.Month
	cursor     int

	cal     *summary.Calendar
	loading bool
	err     error
	status  string
}

func NewCalendarModel(summarySvc *summary.Service, wdSvc *workday.Service, employeeID uuid.UUID, now time.Time) CalendarModel {
	return CalendarModel{
		summaryService: summarySvc,
		workDayService: wdSvc,
		employeeID:     employeeID,
		year:           now.Year(),
		month:          now.Month(),
		cursor:         now.Day() - 1,
		loading:        true,
	}
}

func (m CalendarModel) Title() string { return "Calendar" }

func (m CalendarModel) ShortHelp() string {
	return "Esc: back | arrows: move | [ ]: month | space: toggle worked | p: pay | r: refresh"
}

func (m CalendarModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.cal = msg.cal
			m.cursor = min(m.cursor, len(m.cal.Days)-1)
		}

		return m, nil

	case dayToggledMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = ""

		return m, m.loadCmd()

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m CalendarModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, Back
	case "r":
		return m, m.loadCmd()
	case "[":
		return m.shiftMonth(-1)
	case "]":
		return m.shiftMonth(1)
	case "p":
		id := m.employeeID
		return m, func() tea.Msg { return OpenPayMsg{EmployeeID: id} }
	}

	if m.cal == nil {
		return m, nil
	}

	last := len(m.cal.Days) - 1

	switch msg.String() {
	case "left", "h":
		m.cursor = max(m.cursor-1, 0)
	case "right", "l":
		m.cursor = min(m.cursor+1, last)
	case "up", "k":
		m.cursor = max(m.cursor-7, 0)
	case "down", "j":
		m.cursor = min(m.cursor+7, last)
	case " ":
		return m, m.toggleCmd(m.cal.Days[m.cursor])
	}

	return m, nil
}

func (m CalendarModel) shiftMonth(delta int) (tea.Model, tea.Cmd) {
	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	m.year = first.Year()
	m.month = first.Month()
	m.cursor = 0
	m.loading = true

	return m, m.loadCmd()
}

func (m CalendarModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading calendar...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s, %s %d\n\n", m.cal.Employee.Name, m.month, m.year)
	b.WriteString(renderGrid(m.cal, m.cursor))
	b.WriteString("\n" + Legend() + "\n\n")

	day := m.cal.Days[m.cursor]
	fmt.Fprintf(&b, "%s  %s  %s", day.Date, StatusLabel(day.Status), FormatOptionalMoney(day.Amount))

	if day.WorkDay != nil && day.WorkDay.Notes != "" {
		b.WriteString("  " + day.WorkDay.Notes)
	}

	st := m.cal.Stats
	fmt.Fprintf(&b, "\n\nWorked %d | Paid days %d | Earned %s | Paid %s | Owed %s",
		st.TotalWorked, st.TotalPaidDays,
		FormatMoney(st.TotalEarned), FormatMoney(st.TotalPaid),
		owedStyle.Render(FormatMoney(st.TotalOwed)),
	)

	if m.status != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.status))
	}

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

// renderGrid lays the month out in Monday-first weeks.
func renderGrid(cal *summary.Calendar, cursor int) string {
	var b strings.Builder

	b.WriteString(strings.Join(weekdays, " ") + "\n")

	lead := (int(time.Date(cal.Year, cal.Month, 1, 0, 0, 0, 0, time.UTC).Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("   ", lead))

	for i, day := range cal.Days {
		cell := StatusStyle(day.Status).Render(fmt.Sprintf("%2d", i+1))
		if i == cursor {
			cell = cursorStyle.Inherit(StatusStyle(day.Status)).Render(fmt.Sprintf("%2d", i+1))
		}

		b.WriteString(cell)

		if (lead+i+1)%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	return strings.TrimRight(b.String(), " ") + "\n"
}

// Messages

type calendarLoadedMsg struct {
	cal *summary.Calendar
	err error
}

func (m CalendarModel) loadCmd() tea.Cmd {
	id, year, month := m.employeeID, m.year, m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		cal, err := m.summaryService.Calendar(ctx, id, year, month)

		return calendarLoadedMsg{cal: cal, err: err}
	}
}

type dayToggledMsg struct {
	err error
}

// toggleCmd flips the worked flag of an existing day or records a new
// worked day on an empty date.
func (m CalendarModel) toggleCmd(day summary.CalendarDay) tea.Cmd {
	id := m.employeeID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if day.WorkDay != nil {
			return dayToggledMsg{err: m.workDayService.SetWorked(ctx, day.WorkDay.ID, !day.WorkDay.Worked)}
		}

		_, err := m.workDayService.AddOrUpdate(ctx, workday.AddOrUpdateParams{
			EmployeeID: id,
			Date:       day.Date,
			Worked:     true,
		})

		return dayToggledMsg{err: err}
	}
}
