package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/MrJamesThe3rd/mydays/internal/auth"
	"github.com/MrJamesThe3rd/mydays/internal/http/employee"
	"github.com/MrJamesThe3rd/mydays/internal/http/payment"
	"github.com/MrJamesThe3rd/mydays/internal/http/stats"
	"github.com/MrJamesThe3rd/mydays/internal/http/workday"
)

type Options struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	// JWTSecret guards /api/v1; empty leaves it open.
	JWTSecret string
	Timeout   time.Duration
}

func New(
	opts Options,
	employeesV1 *employee.Handler,
	workDaysV1 *workday.Handler,
	paymentsV1 *payment.Handler,
	statsV1 *stats.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		router.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	router.Use(middleware.CleanPath)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/health"))

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(opts.JWTSecret))

		r.Route("/employees", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			employeesV1.Routes(r)
		})

		r.Route("/workdays", workDaysV1.Routes)

		r.Route("/payments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			paymentsV1.Routes(r)
		})

		r.Group(statsV1.Routes)
	})

	return router
}
