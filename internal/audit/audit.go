// Package audit periodically checks stored data for inconsistencies that
// the calculator reports as diagnostics, and logs them.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/MrJamesThe3rd/mydays/internal/reconcile"
)

const DefaultSchedule = "0 6 * * *"

const runTimeout = 2 * time.Minute

//go:generate mockgen -source=audit.go -destination=audit_mock.go -package=audit
type Source interface {
	Diagnostics(ctx context.Context) ([]reconcile.Diagnostic, error)
}

type Auditor struct {
	cron     *cron.Cron
	source   Source
	schedule string
	logger   *slog.Logger
}

func New(source Source, schedule string, logger *slog.Logger) *Auditor {
	if schedule == "" {
		schedule = DefaultSchedule
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Auditor{
		cron:     cron.New(),
		source:   source,
		schedule: schedule,
		logger:   logger.With("component", "audit"),
	}
}

// Start schedules the audit and starts the cron runner.
func (a *Auditor) Start() error {
	if _, err := a.cron.AddFunc(a.schedule, a.run); err != nil {
		return fmt.Errorf("schedule audit %q: %w", a.schedule, err)
	}

	a.logger.Info("starting audit scheduler", "schedule", a.schedule)
	a.cron.Start()

	return nil
}

// Stop stops the runner and waits for a running audit to finish.
func (a *Auditor) Stop() {
	a.logger.Info("stopping audit scheduler")
	<-a.cron.Stop().Done()
}

func (a *Auditor) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if _, err := a.RunOnce(ctx); err != nil {
		a.logger.Error("audit failed", "error", err)
	}
}

// RunOnce loads the diagnostics, logs each one as a warning and returns them.
func (a *Auditor) RunOnce(ctx context.Context) ([]reconcile.Diagnostic, error) {
	diags, err := a.source.Diagnostics(ctx)
	if err != nil {
		return nil, fmt.Errorf("load diagnostics: %w", err)
	}

	for _, d := range diags {
		attrs := []any{"kind", d.Kind, "employee_id", d.EmployeeID}
		if d.WorkDayID != uuid.Nil {
			attrs = append(attrs, "work_day_id", d.WorkDayID)
		}

		if d.PaymentID != uuid.Nil {
			attrs = append(attrs, "payment_id", d.PaymentID)
		}

		a.logger.Warn(d.Message, attrs...)
	}

	a.logger.Info("audit finished", "diagnostics", len(diags))

	return diags, nil
}
