package app

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

	httpapi "github.com/aussiebroadwan/notekeeper/internal/notes/http"
	"github.com/aussiebroadwan/notekeeper/internal/notes/service"
	"github.com/aussiebroadwan/notekeeper/internal/notes/store"
	"github.com/aussiebroadwan/notekeeper/internal/notes/store/drivers/postgres"
	"github.com/aussiebroadwan/notekeeper/internal/notes/store/drivers/redis"
	"github.com/aussiebroadwan/notekeeper/internal/notes/store/drivers/sqlite"
	"github.com/aussiebroadwan/notekeeper/pkg/cryptox"
	"github.com/aussiebroadwan/notekeeper/pkg/jwtx"
	"github.com/aussiebroadwan/notekeeper/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X".
var BuildVersion = "v0.1.0"

// Application encapsulates the notes service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	access  *jwtx.Codec
	renewal *jwtx.Codec

	// Services
	tokenService        *service.TokenService
	accountService      *service.AccountService
	noteService         *service.NoteService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "notes-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	access, renewal, err := InitCodecs(app.cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token secrets: %w", err)
	}
	app.access, app.renewal = access, renewal

	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the HTTP handler serving the API.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("notes service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"database", app.cfg.DatabaseDriver,
		"renewal_store", app.cfg.RenewalStore,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down notes service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("notes service stopped")
	return nil
}

// initDatabase opens the configured store, applies migrations and, when
// configured, moves refresh tokens to redis.
func (app *Application) initDatabase(ctx context.Context) error {
	var db store.Store

	switch app.cfg.DatabaseDriver {
	case "postgres":
		pg, err := postgres.NewStore(ctx, app.cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := pg.ApplyMigrations(); err != nil {
			_ = pg.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}
		db = pg

	default:
		lite, err := sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := lite.ApplyMigrations(); err != nil {
			_ = lite.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}
		db = lite
	}
	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)

	if app.cfg.RenewalStore == "redis" {
		rt, err := redis.Open(ctx, app.cfg.RedisURL)
		if err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		db = store.WithRenewalTokens(db, rt)
		app.logger.Info("refresh tokens stored in redis")
	}

	app.db = db
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		Store:     app.db,
		Access:    app.access,
		Renewal:   app.renewal,
		AccessTTL: app.cfg.AccessTokenTTL,
	}
	app.accountService = &service.AccountService{
		Store:  app.db,
		Tokens: app.tokenService,
	}
	app.noteService = &service.NoteService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.renewal,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.cfg.CORSOrigin,
		app.db,
		app.logger,
	)

	router.TokenService = app.tokenService
	router.AccountService = app.accountService
	router.NoteService = app.noteService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
