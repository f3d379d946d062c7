package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/mydays/internal/audit"
	"github.com/MrJamesThe3rd/mydays/internal/config"
	"github.com/MrJamesThe3rd/mydays/internal/database"
	"github.com/MrJamesThe3rd/mydays/internal/employee"
	employeeStore "github.com/MrJamesThe3rd/mydays/internal/employee/store"
	mydaysHttp "github.com/MrJamesThe3rd/mydays/internal/http"
	employeeHandler "github.com/MrJamesThe3rd/mydays/internal/http/employee"
	paymentHandler "github.com/MrJamesThe3rd/mydays/internal/http/payment"
	statsHandler "github.com/MrJamesThe3rd/mydays/internal/http/stats"
	workdayHandler "github.com/MrJamesThe3rd/mydays/internal/http/workday"
	"github.com/MrJamesThe3rd/mydays/internal/importer"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
	paymentStore "github.com/MrJamesThe3rd/mydays/internal/payment/store"
	"github.com/MrJamesThe3rd/mydays/internal/payroll"
	"github.com/MrJamesThe3rd/mydays/internal/report"
	"github.com/MrJamesThe3rd/mydays/internal/summary"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
	workdayStore "github.com/MrJamesThe3rd/mydays/internal/workday/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(slog.String("app", cfg.App.Name))
	slog.SetDefault(logger)

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		paymentRepo     = paymentStore.New(db)
		employeeService = employee.NewService(employeeStore.New(db))
		workDayService  = workday.NewService(workdayStore.New(db))
		paymentService  = payment.NewService(paymentRepo)
		payrollService  = payroll.NewService(paymentRepo, workDayService, employeeService, loc)
		summaryService  = summary.NewService(employeeService, workDayService, paymentService, loc)
		reportService   = report.NewService(summaryService)
		importService   = importer.NewService(workDayService)
	)

	var (
		employeeH = employeeHandler.NewHandler(employeeService, summaryService, reportService, loc)
		workDayH  = workdayHandler.NewHandler(workDayService, importService)
		paymentH  = paymentHandler.NewHandler(paymentService, payrollService)
		statsH    = statsHandler.NewHandler(summaryService)
	)

	if cfg.Auth.JWTSecret == "" {
		slog.Warn("AUTH_JWT_SECRET is empty, the API is not protected")
	}

	router := mydaysHttp.New(mydaysHttp.Options{
		Logger:         logger,
		AllowedOrigins: cfg.Server.CORSOrigins,
		JWTSecret:      cfg.Auth.JWTSecret,
		Timeout:        cfg.Server.Timeout,
	}, employeeH, workDayH, paymentH, statsH)

	auditor := audit.New(summaryService, cfg.Audit.Schedule, logger)
	if err := auditor.Start(); err != nil {
		slog.Error("failed to start audit", "error", err)
		os.Exit(1)
	}
	defer auditor.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "port", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
