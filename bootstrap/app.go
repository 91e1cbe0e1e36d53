package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cityhive/api"
	"cityhive/config"
	"cityhive/health"
	"cityhive/service"
	"cityhive/storage"

	"go.uber.org/zap"
)

// App holds all application components and coordinates their lifecycle.
type App struct {
	Logger *zap.Logger
	Sugar  *zap.SugaredLogger
	Config *config.Config

	SQLite *storage.SQLite

	UserService       *service.UserService
	HiveService       *service.HiveService
	InspectionService *service.InspectionService
	HealthService     *health.Service

	API *api.API
}

// NewApp creates a new application instance and initializes all components.
func NewApp(ctx context.Context) (*App, error) {
	app := &App{}

	logger, sugar, err := InitLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger
	app.Sugar = sugar

	sugar.Info("CityHive starting...")

	cfg, err := InitConfig(sugar)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if err := EnsureDataDir(cfg.GetSQLitePath(), sugar); err != nil {
		return nil, fmt.Errorf("pre-flight check failed: %w", err)
	}

	sqlite, err := storage.NewSQLite(cfg.GetSQLitePath(), sugar)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite: %w", err)
	}
	app.SQLite = sqlite

	userStorage := storage.NewSQLiteUserStorage(sqlite, sugar)
	hiveStorage := storage.NewSQLiteHiveStorage(sqlite, sugar)
	inspectionStorage := storage.NewSQLiteInspectionStorage(sqlite, sugar)

	app.UserService = service.NewUserService(userStorage, sugar)
	app.HiveService = service.NewHiveService(hiveStorage, userStorage, sugar)
	app.InspectionService = service.NewInspectionService(inspectionStorage, hiveStorage, sugar)

	probe := health.NewProbe(cfg.DBTimeout(), sugar)
	app.HealthService = health.NewService(
		cfg.Service.Name,
		cfg.Service.Version,
		probe,
		[]health.Dependency{{Name: "database", Pinger: sqlite}},
		sugar,
	)

	app.API = api.NewAPI(app.UserService, app.HiveService, app.InspectionService, app.HealthService, cfg, sugar)

	return app, nil
}

// Start starts the API server in the background. Startup failures are fatal
// and terminate the process.
func (a *App) Start(ctx context.Context) error {
	addr := a.Config.ListenAddress()
	a.Sugar.Infow("Starting API server", "address", addr)

	go func() {
		if err := a.API.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Sugar.Fatalw("API server failed", "error", err)
		}
	}()

	return nil
}

// WaitForShutdown blocks until a shutdown signal is received.
func (a *App) WaitForShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}

// Shutdown gracefully shuts down all components: drain the HTTP server
// first, then close storage.
func (a *App) Shutdown() {
	a.Sugar.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if a.API != nil {
		if err := a.API.Stop(ctx); err != nil {
			a.Sugar.Errorw("Failed to stop API server cleanly", "error", err)
		}
	}

	if a.SQLite != nil {
		if err := a.SQLite.Close(); err != nil {
			a.Sugar.Errorw("Failed to close SQLite", "error", err)
		}
	}

	a.Sugar.Info("Shutdown complete")
	_ = a.Logger.Sync()
}
