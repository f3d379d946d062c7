package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mydays/internal/employee"
)

type employeesLoadedMsg struct {
	employees []*employee.Employee
	err       error
}

func loadEmployeesCmd(svc *employee.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		emps, err := svc.List(ctx)

		return employeesLoadedMsg{employees: emps, err: err}
	}
}

func employeeSelect(emps []*employee.Employee, value *uuid.UUID) *huh.Select[uuid.UUID] {
	opts := make([]huh.Option[uuid.UUID], 0, len(emps))
	for _, e := range emps {
		opts = append(opts, huh.NewOption(e.Name, e.ID))
	}

	return huh.NewSelect[uuid.UUID]().
		Key("employee").
		Title("Employee").
		Options(opts...).
		Value(value)
}
