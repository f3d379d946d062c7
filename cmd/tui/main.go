package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/mydays/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/mydays/internal/config"
	"github.com/MrJamesThe3rd/mydays/internal/database"
	"github.com/MrJamesThe3rd/mydays/internal/employee"
	employeeStore "github.com/MrJamesThe3rd/mydays/internal/employee/store"
	"github.com/MrJamesThe3rd/mydays/internal/importer"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	paymentStore "github.com/MrJamesThe3rd/mydays/internal/payment/store"
	"github.com/MrJamesThe3rd/mydays/internal/payroll"
	"github.com/MrJamesThe3rd/mydays/internal/report"
	"github.com/MrJamesThe3rd/mydays/internal/summary"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
	workdayStore "github.com/MrJamesThe3rd/mydays/internal/workday/store"
)

type model struct {
	employeeService *employee.Service
	workDayService  *workday.Service
	payrollService  *payroll.Service
	summaryService  *summary.Service
	reportService   *report.Service
	importService   *importer.Service
	loc             *time.Location
	exportDir       string

	currentView View
	// payReturn is where Esc leaves the payment form.
	payReturn View

	employeesView view.EmployeesModel
	calendarView  view.CalendarModel
	payView       view.PayModel
	importView    view.ImportModel
	exportView    view.ExportModel
}

type View int

const (
	ViewMenu      View = 0
	ViewEmployees View = 1
	ViewImport    View = 2
	ViewExport    View = 3
	ViewCalendar  View = 4
	ViewPay       View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("failed to load timezone", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	paymentRepo := paymentStore.New(db)
	empSvc := employee.NewService(employeeStore.New(db))
	wdSvc := workday.NewService(workdayStore.New(db))
	paySvc := payment.NewService(paymentRepo)
	payrollSvc := payroll.NewService(paymentRepo, wdSvc, empSvc, loc)
	sumSvc := summary.NewService(empSvc, wdSvc, paySvc, loc)
	repSvc := report.NewService(sumSvc)
	impSvc := importer.NewService(wdSvc)

	return model{
		employeeService: empSvc,
		workDayService:  wdSvc,
		payrollService:  payrollSvc,
		summaryService:  sumSvc,
		reportService:   repSvc,
		importService:   impSvc,
		loc:             loc,
		exportDir:       cfg.Export.OutputDir,
		currentView:     ViewMenu,
		employeesView:   view.NewEmployeesModel(empSvc, sumSvc),
		importView:      view.NewImportModel(empSvc, impSvc),
		exportView:      view.NewExportModel(empSvc, repSvc, cfg.Export.OutputDir),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewEmployees
				m.employeesView = view.NewEmployeesModel(m.employeeService, m.summaryService)

				return m, m.employeesView.Init()
			case "2":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.employeeService, m.importService)

				return m, m.importView.Init()
			case "3":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.employeeService, m.reportService, m.exportDir)

				return m, m.exportView.Init()
			}
		}

	case view.OpenCalendarMsg:
		m.currentView = ViewCalendar
		m.calendarView = view.NewCalendarModel(m.summaryService, m.workDayService, msg.EmployeeID, time.Now().In(m.loc))

		return m, m.calendarView.Init()

	case view.OpenPayMsg:
		m.payReturn = m.currentView
		m.currentView = ViewPay
		m.payView = view.NewPayModel(m.employeeService, m.workDayService, m.payrollService, msg.EmployeeID)

		return m, m.payView.Init()

	case view.BackMsg:
		return m.back()
	}

	switch m.currentView {
	case ViewEmployees:
		var newModel tea.Model
		newModel, cmd = m.employeesView.Update(msg)
		m.employeesView = newModel.(view.EmployeesModel)
	case ViewCalendar:
		var newModel tea.Model
		newModel, cmd = m.calendarView.Update(msg)
		m.calendarView = newModel.(view.CalendarModel)
	case ViewPay:
		var newModel tea.Model
		newModel, cmd = m.payView.Update(msg)
		m.payView = newModel.(view.PayModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

// back leaves the current screen. Screens opened from the employee table
// return to it and reload, so totals reflect any change.
func (m model) back() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewCalendar:
		m.currentView = ViewEmployees
		return m, m.employeesView.Init()
	case ViewPay:
		m.currentView = m.payReturn
		if m.payReturn == ViewCalendar {
			return m, m.calendarView.Init()
		}

		return m, m.employeesView.Init()
	}

	m.currentView = ViewMenu

	return m, nil
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"My Days\n\n" +
				"1. Employees\n" +
				"2. Import Work Days\n" +
				"3. Export Report\n\n" +
				"q. Quit",
		)
	case ViewEmployees:
		return view.Frame(m.employeesView)
	case ViewCalendar:
		return view.Frame(m.calendarView)
	case ViewPay:
		return view.Frame(m.payView)
	case ViewImport:
		return view.Frame(m.importView)
	case ViewExport:
		return view.Frame(m.exportView)
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
