package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"cityhive/config"
	"cityhive/core"
	"cityhive/health"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterEntry holds a rate limiter with last seen time
type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UserRegistrar handles user registration and lookup
type UserRegistrar interface {
	RegisterUser(ctx context.Context, input core.UserRegistrationInput) core.CreationResult[core.User]
	GetUserByEmail(ctx context.Context, email string) (*core.User, error)
}

// HiveCreator handles hive creation and lookup
type HiveCreator interface {
	CreateHive(ctx context.Context, input core.HiveCreationInput) core.CreationResult[core.Hive]
	GetHiveByID(ctx context.Context, id int64) (*core.Hive, error)
	GetHivesByUserID(ctx context.Context, userID int64) ([]core.Hive, error)
}

// InspectionCreator handles inspection scheduling and lookup
type InspectionCreator interface {
	CreateInspection(ctx context.Context, input core.InspectionCreationInput) core.CreationResult[core.Inspection]
	GetInspectionByID(ctx context.Context, id int64) (*core.Inspection, error)
	GetInspectionsByHiveID(ctx context.Context, hiveID int64) ([]core.Inspection, error)
}

// HealthChecker answers liveness and readiness queries
type HealthChecker interface {
	CheckLiveness(ctx context.Context) health.SystemHealth
	CheckReadiness(ctx context.Context) health.SystemHealth
}

// API holds the API server
type API struct {
	router         *mux.Router
	server         *http.Server
	users          UserRegistrar
	hives          HiveCreator
	inspections    InspectionCreator
	health         HealthChecker
	config         *config.Config
	logger         *zap.SugaredLogger
	rateLimiters   map[string]*rateLimiterEntry
	rateLimitersMu sync.Mutex
	stopCh         chan struct{}
}

// NewAPI creates a new API server
func NewAPI(users UserRegistrar, hives HiveCreator, inspections InspectionCreator, healthChecker HealthChecker, cfg *config.Config, logger *zap.SugaredLogger) *API {
	api := &API{
		router:       mux.NewRouter(),
		users:        users,
		hives:        hives,
		inspections:  inspections,
		health:       healthChecker,
		config:       cfg,
		logger:       logger,
		rateLimiters: make(map[string]*rateLimiterEntry),
		stopCh:       make(chan struct{}),
	}
	api.setupRoutes()
	go api.cleanupRateLimiters()
	return api
}

// setupRoutes sets up the API routes
func (a *API) setupRoutes() {
	a.router.Use(a.loggingMiddleware)
	a.router.Use(a.rateLimitMiddleware)

	a.router.HandleFunc("/api/users", a.createUser).Methods("POST")
	a.router.HandleFunc("/api/users/{id}/hives", a.getUserHives).Methods("GET")
	a.router.HandleFunc("/api/hives", a.createHive).Methods("POST")
	a.router.HandleFunc("/api/hives/{id}", a.getHive).Methods("GET")
	a.router.HandleFunc("/api/hives/{id}/inspections", a.getHiveInspections).Methods("GET")
	a.router.HandleFunc("/api/inspections", a.createInspection).Methods("POST")
	a.router.HandleFunc("/api/inspections/{id}", a.getInspection).Methods("GET")

	a.router.HandleFunc("/health/live", a.getLiveness).Methods("GET")
	a.router.HandleFunc("/health/ready", a.getReadiness).Methods("GET")

	a.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

// Handler exposes the router, mainly for tests
func (a *API) Handler() http.Handler {
	return a.router
}

// Start starts the API server
func (a *API) Start(addr string) error {
	a.server = &http.Server{
		Addr:         addr,
		Handler:      a.router,
		ReadTimeout:  time.Duration(a.config.API.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.config.API.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.config.API.IdleTimeout) * time.Second,
	}
	return a.server.ListenAndServe()
}

// Stop stops the API server
func (a *API) Stop(ctx context.Context) error {
	close(a.stopCh)
	if a.server != nil {
		return a.server.Shutdown(ctx)
	}
	return nil
}
