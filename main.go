package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gatekit/gatekit/authenticator"
	"github.com/gatekit/gatekit/config"
	"github.com/gatekit/gatekit/controllers"
	"github.com/gatekit/gatekit/database"
	"github.com/gatekit/gatekit/metrics"
	gatemiddleware "github.com/gatekit/gatekit/middleware"
	"github.com/gatekit/gatekit/repositories"
	"github.com/gatekit/gatekit/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load environment variables from .env file when present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize audit database
	if err := database.InitializeDatabase(cfg.AuditDB); err != nil {
		log.Fatalf("Failed to initialize audit database: %v", err)
	}
	defer database.CloseDB()

	db := database.GetDB()

	// Initialize repositories
	repos := repositories.NewRepositories(db, cfg.UsersFile, cfg.LogFile)

	// Fixed admin set for the process lifetime
	admins := authenticator.NewAdminSet(cfg.AdminIDs)

	// Initialize services (loads the durable allow-list)
	srvs, err := services.NewServices(repos, admins)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, admins, repos.Audit)

	// Metrics registry and collector
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Per-client rate limiter
	limiter := gatemiddleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer limiter.Stop()

	// Set up router
	r := setupRouter(ctrl, repos, collector, registry, limiter, cfg)

	fmt.Printf("🚀 Gatekit starting on port %s\n", cfg.Port)
	fmt.Printf("👤 Admins configured: %d\n", admins.Size())
	fmt.Printf("🗃️  Allow-list: %s, activity log: %s, audit db: %s\n", cfg.UsersFile, cfg.LogFile, cfg.AuditDB)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// setupRouter configures all routes
func setupRouter(
	ctrl *controllers.Controllers,
	repos *repositories.Repositories,
	collector *metrics.Collector,
	registry *prometheus.Registry,
	limiter *gatemiddleware.RateLimiter,
	cfg *config.Config,
) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(gatemiddleware.RequestID)
	r.Use(limiter.Middleware())
	r.Use(collector.Middleware())
	r.Use(gatemiddleware.AuditLogger(repos.Audit))

	// Admin checks happen per handler against the request payload, so
	// every route is registered without a route-level auth wrapper.
	r.Post("/add_user", ctrl.Access.AddUser)
	r.Post("/remove_user", ctrl.Access.RemoveUser)
	r.Get("/user_info", ctrl.Access.UserInfo)
	r.Get("/show_logs", ctrl.Logs.ShowLogs)
	r.Post("/clear_logs", ctrl.Logs.ClearLogs)
	r.Post("/broadcast", ctrl.Logs.Broadcast)
	r.Get("/audit", ctrl.Audit.Recent)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "gatekit"}`)
	})
	r.Handle("/metrics", metrics.Handler(registry))

	return r
}
