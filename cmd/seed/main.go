package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/mydays/internal/auth"
	"github.com/MrJamesThe3rd/mydays/internal/config"
	"github.com/MrJamesThe3rd/mydays/internal/database"
	"github.com/MrJamesThe3rd/mydays/internal/employee"
	employeeStore "github.com/MrJamesThe3rd/mydays/internal/employee/store"
	paymentStore "github.com/MrJamesThe3rd/mydays/internal/payment/store"
	"github.com/MrJamesThe3rd/mydays/internal/payroll"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
	workdayStore "github.com/MrJamesThe3rd/mydays/internal/workday/store"
)

const tokenTTL = 30 * 24 * time.Hour

type seeder struct {
	employees *employee.Service
	workDays  *workday.Service
	payroll   *payroll.Service
}

func main() {
	var (
		employees = flag.Int("employees", 3, "number of employees to create")
		days      = flag.Int("days", 30, "days of history per employee")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

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
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	empSvc := employee.NewService(employeeStore.New(db))
	wdSvc := workday.NewService(workdayStore.New(db))
	s := seeder{
		employees: empSvc,
		workDays:  wdSvc,
		payroll:   payroll.NewService(paymentStore.New(db), wdSvc, empSvc, loc),
	}

	for _, p := range plan(*seed, *employees, *days, time.Now().In(loc)) {
		if err := s.apply(ctx, p); err != nil {
			slog.Error("failed to seed employee", "name", p.Name, "error", err)
			os.Exit(1)
		}

		slog.Info("seeded employee", "name", p.Name, "days", len(p.Days), "paid_until", p.PaidUntil)
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Info("AUTH_JWT_SECRET is empty, no token needed")
		return
	}

	token, err := auth.Issue(cfg.Auth.JWTSecret, "seed", "Seed User", tokenTTL)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		os.Exit(1)
	}

	fmt.Println(token)
}

func (s seeder) apply(ctx context.Context, p employeePlan) error {
	e, err := s.employees.Create(ctx, employee.CreateParams{Name: p.Name, DailyWage: p.DailyWage})
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}

	if p.RaiseOn != nil {
		if _, err := s.employees.ChangeWage(ctx, e.ID, p.Raise, *p.RaiseOn); err != nil {
			return fmt.Errorf("change wage: %w", err)
		}
	}

	rows := make([]workday.AddOrUpdateParams, 0, len(p.Days))
	for _, d := range p.Days {
		rows = append(rows, workday.AddOrUpdateParams{
			EmployeeID:   e.ID,
			Date:         d.Date,
			Worked:       d.Worked,
			CustomAmount: d.CustomAmount,
		})
	}

	wds, err := s.workDays.CreateBatch(ctx, e.ID, rows)
	if err != nil {
		return fmt.Errorf("create work days: %w", err)
	}

	var paid []uuid.UUID

	for _, wd := range wds {
		if wd.Worked && wd.Date <= p.PaidUntil {
			paid = append(paid, wd.ID)
		}
	}

	if len(paid) == 0 {
		return nil
	}

	_, err = s.payroll.CreateAndMarkWorkDays(ctx, payroll.CreateParams{
		EmployeeID: e.ID,
		WorkDayIDs: paid,
		Type:       p.PaymentType,
		Date:       p.PaidUntil,
		Notes:      "seed",
	})
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}

	return nil
}
