package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
)

var statusStyles = map[reconcile.Status]lipgloss.Style{
	reconcile.StatusWorkedPaid:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")),
	reconcile.StatusWorkedUnpaid: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
	reconcile.StatusScheduled:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("75")),
	reconcile.StatusNotWorked:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")),
	reconcile.StatusNotScheduled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

var statusLabels = map[reconcile.Status]string{
	reconcile.StatusWorkedPaid:   "Paid",
	reconcile.StatusWorkedUnpaid: "Unpaid",
	reconcile.StatusScheduled:    "Scheduled",
	reconcile.StatusNotWorked:    "Not worked",
	reconcile.StatusNotScheduled: "No record",
}

// StatusStyle maps a day status to its calendar colour.
func StatusStyle(s reconcile.Status) lipgloss.Style {
	if style, ok := statusStyles[s]; ok {
		return style
	}

	return lipgloss.NewStyle()
}

func StatusLabel(s reconcile.Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}

	return string(s)
}

// Legend renders one swatch per status.
func Legend() string {
	parts := make([]string, 0, len(reconcile.Statuses()))
	for _, s := range reconcile.Statuses() {
		parts = append(parts, StatusStyle(s).Render("  ")+" "+StatusLabel(s))
	}

	return strings.Join(parts, "   ")
}

var owedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
