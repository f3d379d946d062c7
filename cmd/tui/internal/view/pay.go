package view

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
	"github.com/MrJamesThe3rd/mydays/internal/isodate"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	"github.com/MrJamesThe3rd/mydays/internal/payroll"
	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

type payState int

const (
	payStateLoading payState = iota
	payStateForm
	payStateSaving
	payStateResult
)

// payFields is shared by pointer so huh bindings survive model copies.
type payFields struct {
	workDayIDs []uuid.UUID
	kind       payment.Type
	amount     string
	date       string
	notes      string
}

// PayModel records one payment over a selection of unpaid worked days.
type PayModel struct {
	employeeService *employee.Service
	workDayService  *workday.Service
	payrollService  *payroll.Service

	employeeID uuid.UUID
	employee   *employee.Employee
	unpaid     []*workday.WorkDay

	state  payState
	form   *huh.Form
	fields *payFields

	created *payment.Payment
	err     error
}

func NewPayModel(empSvc *employee.Service, wdSvc *workday.Service, payrollSvc *payroll.Service, employeeID uuid.UUID) PayModel {
	return PayModel{
		employeeService: empSvc,
		workDayService:  wdSvc,
		payrollService:  payrollSvc,
		employeeID:      employeeID,
		fields:          &payFields{kind: payment.TypeCash},
	}
}

func (m PayModel) Title() string { return "Record Payment" }

func (m PayModel) ShortHelp() string {
	if m.state == payStateForm {
		return "x: toggle day | Enter: next | Esc: cancel"
	}

	return "Esc: back"
}

func (m PayModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m PayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case payLoadedMsg:
		if msg.err == nil && len(msg.unpaid) == 0 {
			msg.err = errors.New("no unpaid worked days")
		}

		if msg.err != nil {
			m.state = payStateResult
			m.err = msg.err

			return m, nil
		}

		m.employee = msg.employee
		m.unpaid = msg.unpaid
		m.form = m.buildForm()
		m.state = payStateForm

		return m, m.form.Init()

	case paySavedMsg:
		m.state = payStateResult
		m.created = msg.payment
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.state != payStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = payStateSaving

	return m, m.saveCmd(*m.fields)
}

func optionalMoney(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return validateMoney(s)
}

func optionalDate(s string) error {
	if strings.TrimSpace(s) == "" || isodate.Valid(strings.TrimSpace(s)) {
		return nil
	}

	return errors.New("use YYYY-MM-DD")
}

func (m PayModel) buildForm() *huh.Form {
	opts := make([]huh.Option[uuid.UUID], 0, len(m.unpaid))
	for _, wd := range m.unpaid {
		label := fmt.Sprintf("%s  %s", wd.Date, FormatMoney(reconcile.ResolveAmount(*wd, *m.employee)))
		opts = append(opts, huh.NewOption(label, wd.ID))
	}

	types := make([]huh.Option[payment.Type], 0, len(payment.Types()))
	for _, t := range payment.Types() {
		types = append(types, huh.NewOption(strings.ReplaceAll(string(t), "_", " "), t))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[uuid.UUID]().
				Key("days").
				Title("Days to settle").
				Options(opts...).
				Value(&m.fields.workDayIDs).
				Validate(func(ids []uuid.UUID) error {
					if len(ids) == 0 {
						return errors.New("pick at least one day")
					}

					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[payment.Type]().
				Key("type").
				Title("Payment type").
				Options(types...).
				Value(&m.fields.kind),
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Description("Blank uses the wage of the selected days").
				Value(&m.fields.amount).
				Validate(optionalMoney),
			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("today").
				Value(&m.fields.date).
				Validate(optionalDate),
			huh.NewText().
				Key("notes").
				Title("Notes").
				Value(&m.fields.notes),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m PayModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case payStateLoading:
		return style.Render("Loading unpaid days...")
	case payStateForm:
		return style.Render(fmt.Sprintf("Payment for %s\n\n%s", m.employee.Name, m.form.View()))
	case payStateSaving:
		return style.Render("Saving payment...")
	case payStateResult:
		if m.err != nil {
			return style.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to go back)")
		}

		return style.Render(successStyle.Render(fmt.Sprintf(
			"Paid %s by %s for %d days on %s.",
			FormatMoney(m.created.Amount), m.created.Type, len(m.created.WorkDayIDs), m.created.Date,
		)) + "\n\n(Esc to go back)")
	}

	return ""
}

// Messages

type payLoadedMsg struct {
	employee *employee.Employee
	unpaid   []*workday.WorkDay
	err      error
}

func (m PayModel) loadCmd() tea.Cmd {
	id := m.employeeID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		emp, err := m.employeeService.Get(ctx, id)
		if err != nil {
			return payLoadedMsg{err: err}
		}

		wds, err := m.workDayService.List(ctx, workday.ListFilter{EmployeeID: &id})
		if err != nil {
			return payLoadedMsg{err: err}
		}

		unpaid := make([]*workday.WorkDay, 0, len(wds))
		for _, wd := range wds {
			if wd.Worked && !wd.Paid {
				unpaid = append(unpaid, wd)
			}
		}

		return payLoadedMsg{employee: emp, unpaid: unpaid}
	}
}

type paySavedMsg struct {
	payment *payment.Payment
	err     error
}

func (m PayModel) saveCmd(fields payFields) tea.Cmd {
	params := payroll.CreateParams{
		EmployeeID: m.employeeID,
		WorkDayIDs: fields.workDayIDs,
		Type:       fields.kind,
		Notes:      strings.TrimSpace(fields.notes),
		Date:       strings.TrimSpace(fields.date),
	}

	return func() tea.Msg {
		if s := strings.TrimSpace(fields.amount); s != "" {
			amount, err := decimal.NewFromString(s)
			if err != nil {
				return paySavedMsg{err: err}
			}

			params.Amount = &amount
		}

		ctx, cancel := DbCtx()
		defer cancel()

		p, err := m.payrollService.CreateAndMarkWorkDays(ctx, params)

		return paySavedMsg{payment: p, err: err}
	}
}
