package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"hrms/internal/domain/audit"
	"hrms/internal/domain/auth"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/payroll"
	"hrms/internal/domain/registry"
	"hrms/internal/domain/reports"
	"hrms/internal/domain/view"
	"hrms/internal/platform/config"
	"hrms/internal/platform/logging"
	"hrms/internal/platform/metrics"
	"hrms/internal/platform/statefile"
	"hrms/internal/session"
	"hrms/internal/transport/http/api"
	audithandler "hrms/internal/transport/http/handlers/audit"
	authhandler "hrms/internal/transport/http/handlers/auth"
	dashboardhandler "hrms/internal/transport/http/handlers/dashboard"
	employeeshandler "hrms/internal/transport/http/handlers/employees"
	leavehandler "hrms/internal/transport/http/handlers/leave"
	payrollhandler "hrms/internal/transport/http/handlers/payroll"
	reportshandler "hrms/internal/transport/http/handlers/reports"
	"hrms/internal/transport/http/middleware"
)

// App bundles the router and its collaborators so tests can drive the full
// HTTP surface without binding a listener.
type App struct {
	Router   chi.Router
	Sessions *session.Manager
	Trail    *audit.Trail
	Logger   zerolog.Logger

	cfg config.Config
}

func New(cfg config.Config, logger zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(cfg.DemoPassword)
	if err != nil {
		return nil, err
	}

	stores := view.Stores{
		Employees: employee.NewStore(),
		Leave:     leave.NewStore(),
		Payroll:   payroll.NewStore(),
		Reports:   reports.NewStore(),
	}
	stores.Employees.Seed()
	stores.Leave.Seed()
	stores.Payroll.Seed()
	stores.Reports.Seed()

	trail := audit.NewTrail()
	middleware.UseAuditTrail(trail)

	state := statefile.New(cfg.StateFile)
	sessions := session.New(state, passwordHash, cfg.LoginDelay, logger)
	sessions.OnChange(func(identity registry.Identity) {
		trail.Record(audit.EventRoleSwitch, identity, "active identity switched", "")
		logger.Info().
			Str("role", string(identity.Role)).
			Str("employeeId", identity.EmployeeID).
			Msg("active identity switched")
	})

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger, collector))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Identity(cfg.JWTSecret, sessions))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if collector != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(sessions, cfg.JWTSecret, cfg.SessionTTL).RegisterRoutes(r)
		dashboardhandler.NewHandler(stores).RegisterRoutes(r)
		employeeshandler.NewHandler(stores.Employees).RegisterRoutes(r)
		leavehandler.NewHandler(stores.Leave).RegisterRoutes(r)
		payrollhandler.NewHandler(stores.Payroll).RegisterRoutes(r)
		reportshandler.NewHandler(stores.Reports).RegisterRoutes(r)
		audithandler.NewHandler(trail).RegisterRoutes(r)
	})

	return &App{
		Router:   router,
		Sessions: sessions,
		Trail:    trail,
		Logger:   logger,
		cfg:      cfg,
	}, nil
}

func (a *App) ListenAndServe() error {
	a.Logger.Info().Str("addr", a.cfg.Addr).Msg("hrms server listening")
	return http.ListenAndServe(a.cfg.Addr, a.Router)
}

func Run() {
	cfg := config.Load()
	logger := logging.New(cfg.Environment, cfg.LogLevel)

	app, err := New(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build application")
	}
	if err := app.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
