package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpapi "github.com/vitaran/vitaran/internal/vitaran/http"
	"github.com/vitaran/vitaran/internal/vitaran/payment"
	"github.com/vitaran/vitaran/internal/vitaran/payment/razorpay"
	"github.com/vitaran/vitaran/internal/vitaran/service"
	"github.com/vitaran/vitaran/internal/vitaran/store"
	"github.com/vitaran/vitaran/internal/vitaran/store/drivers/mongo"
	"github.com/vitaran/vitaran/internal/vitaran/store/drivers/postgres"
	"github.com/vitaran/vitaran/internal/vitaran/store/drivers/sqlite"
	"github.com/vitaran/vitaran/pkg/feed"
	"github.com/vitaran/vitaran/pkg/jwtx"
	"github.com/vitaran/vitaran/pkg/slogx"
	"github.com/vitaran/vitaran/web"
)

// BuildVersion is overridden at build time with -ldflags "-X ...app.BuildVersion=".
var BuildVersion = "v0.1.0"

// storeConnectTimeout bounds the initial connection to a networked database.
const storeConnectTimeout = 15 * time.Second

// Application wires the Vitaran server together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	signer   jwtx.Signer
	verifier jwtx.Verifier
	gateway  payment.Gateway

	// Services
	authService         *service.AuthService
	subscriptionService *service.SubscriptionService
	dashboardService    *service.DashboardService
	paymentService      *service.PaymentService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New validates cfg and builds every dependency. Failing to reach or migrate
// the database is fatal.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "vitaran",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, verifier, err := InitSessionKeys(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}
	app.signer = signer
	app.verifier = verifier

	if err := app.initPayment(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler is the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("vitaran server starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
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
	app.logger.Info("shutting down vitaran server...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("vitaran server stopped")
	return nil
}

// initDatabase opens the store named by DATABASE_URL and applies migrations.
func (app *Application) initDatabase() error {
	ctx, cancel := context.WithTimeout(context.Background(), storeConnectTimeout)
	defer cancel()

	db, driver, err := OpenStore(ctx, app.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", driver)
	return nil
}

// OpenStore picks a driver from the DATABASE_URL scheme. Anything without a
// known scheme is taken as a SQLite path.
func OpenStore(ctx context.Context, cfg Config) (store.Store, string, error) {
	url := cfg.DatabaseURL
	lower := strings.ToLower(url)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		db, err := postgres.NewStore(ctx, url)
		if err != nil {
			return nil, "", err
		}
		return db, "postgres", nil
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		db, err := mongo.NewStore(ctx, url, cfg.MongoDatabase)
		if err != nil {
			return nil, "", err
		}
		return db, "mongo", nil
	default:
		db, err := sqlite.NewStore(url)
		if err != nil {
			return nil, "", err
		}
		return db, "sqlite", nil
	}
}

// initPayment picks the Razorpay gateway when credentials are configured.
func (app *Application) initPayment() error {
	if !app.cfg.PaymentsEnabled() {
		app.gateway = payment.Disabled{}
		app.logger.Warn("RAZORPAY_KEY_ID/RAZORPAY_KEY_SECRET not set, payment orders are disabled")
		return nil
	}

	client, err := razorpay.New(razorpay.Config{
		KeyID:              app.cfg.RazorpayKeyID,
		KeySecret:          app.cfg.RazorpayKeySecret,
		BaseURL:            app.cfg.RazorpayBaseURL,
		Timeout:            app.cfg.PaymentTimeout,
		BreakerMaxFailures: uint32(app.cfg.PaymentBreakerMaxFailures),
		BreakerTimeout:     app.cfg.PaymentBreakerTimeout,
		Logger:             app.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize payment gateway: %w", err)
	}
	app.gateway = client

	app.logger.Info("payment gateway ready", "gateway", client.Name(), "currency", app.cfg.PaymentCurrency)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:                app.db,
		Signer:               app.signer,
		Verifier:             app.verifier,
		Issuer:               app.cfg.Issuer,
		TokenTTL:             app.cfg.TokenTTL,
		ResetRequiresSession: app.cfg.ResetRequiresSession,
	}
	if !app.cfg.ResetRequiresSession {
		app.logger.Warn("password reset does not require a session; anyone knowing an email can reset it")
	}

	app.subscriptionService = &service.SubscriptionService{
		Store: app.db,
		Auth:  app.authService,
	}
	app.dashboardService = &service.DashboardService{
		Auth:      app.authService,
		Generator: feed.NewGenerator(nil),
	}
	app.paymentService = &service.PaymentService{
		Auth:     app.authService,
		Gateway:  app.gateway,
		Currency: app.cfg.PaymentCurrency,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		app.gateway,
		BuildVersion,
		app.db,
		app.staticFS(),
		app.logger,
	)

	router.AuthService = app.authService
	router.SubscriptionService = app.subscriptionService
	router.DashboardService = app.dashboardService
	router.PaymentService = app.paymentService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

func (app *Application) staticFS() fs.FS {
	if app.cfg.StaticDir != "" {
		app.logger.Info("serving static files from disk", "dir", app.cfg.StaticDir)
		return os.DirFS(app.cfg.StaticDir)
	}
	return web.FS()
}
