package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/db"
	"hrpay/internal/domain/attendance"
	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/component"
	"hrpay/internal/domain/employee"
	"hrpay/internal/domain/increment"
	"hrpay/internal/domain/leave"
	"hrpay/internal/domain/payroll"
	"hrpay/internal/domain/salary"
	"hrpay/internal/platform/config"
	"hrpay/internal/platform/jobs"
	"hrpay/internal/platform/metrics"
	"hrpay/internal/transport/http/api"
	attendancehandler "hrpay/internal/transport/http/handlers/attendance"
	authhandler "hrpay/internal/transport/http/handlers/auth"
	componenthandler "hrpay/internal/transport/http/handlers/components"
	employeehandler "hrpay/internal/transport/http/handlers/employees"
	incrementhandler "hrpay/internal/transport/http/handlers/increments"
	leavehandler "hrpay/internal/transport/http/handlers/leave"
	payrollhandler "hrpay/internal/transport/http/handlers/payroll"
	salaryhandler "hrpay/internal/transport/http/handlers/salary"
	"hrpay/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	jobsSvc := jobs.New(pool)
	jobsSvc.Start(ctx)

	auditSvc := audit.New(pool)
	componentSvc := component.NewService(component.NewStore(pool))
	salarySvc := salary.NewService(salary.NewStore(pool), componentSvc)
	attendanceSvc := attendance.NewService(attendance.NewStore(pool))
	employeeStore := employee.NewStore(pool)
	leaveSvc := leave.NewService(leave.NewStore(pool), attendanceSvc)
	payrollSvc := payroll.NewService(payroll.NewStore(pool), collector, cfg.BulkWorkers, cfg.PayslipDir)
	incrementSvc := increment.NewService(increment.NewStore(pool))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if collector != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(pool, cfg.JWTSecret, auditSvc).RegisterRoutes(r)
		componenthandler.NewHandler(componentSvc, auditSvc).RegisterRoutes(r)
		employeehandler.NewHandler(employeeStore, auditSvc).RegisterRoutes(r)
		salaryhandler.NewHandler(salarySvc, auditSvc).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceSvc).RegisterRoutes(r)
		leavehandler.NewHandler(leaveSvc, auditSvc).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollSvc, jobsSvc, auditSvc).RegisterRoutes(r)
		incrementhandler.NewHandler(incrementSvc).RegisterRoutes(r)
	})

	log.Printf("payroll server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
