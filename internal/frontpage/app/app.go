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

	httpapi "github.com/aussiebroadwan/frontpage/internal/frontpage/http"
	"github.com/aussiebroadwan/frontpage/internal/frontpage/service"
	"github.com/aussiebroadwan/frontpage/pkg/redditsdk"
	"github.com/aussiebroadwan/frontpage/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the upstream client, services and HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Upstream
	tokens *redditsdk.TokenManager
	client *redditsdk.Client

	// Services
	feedService     *service.FeedService
	threadService   *service.ThreadService
	mutationService *service.MutationService
	accountService  *service.AccountService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "frontpage",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	app.initUpstream()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("frontpage starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"grant", app.tokens.Credentials().Grant(),
		"api_key_gate", app.cfg.APIKey != "",
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

// Shutdown gracefully shuts down the application. The cached access token is simply
// dropped with the process.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down frontpage...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
		return err
	}

	app.logger.Info("frontpage stopped")
	return nil
}

// initUpstream builds the token manager and resource client. Incomplete credentials
// only produce a warning so the service can still report itself on /readyz.
func (app *Application) initUpstream() {
	creds := app.cfg.Credentials()
	if err := creds.Validate(); err != nil {
		app.logger.Warn("upstream credentials incomplete; api calls will fail until configured", "error", err)
	}

	app.tokens = redditsdk.NewTokenManager(creds, app.cfg.Reddit.AuthURL, app.cfg.Reddit.UserAgent)
	app.tokens.HTTPClient.Timeout = app.cfg.Upstream.Timeout

	app.client = redditsdk.NewClient(app.cfg.Reddit.APIURL, app.tokens)
	app.client.HTTPClient.Timeout = app.cfg.Upstream.Timeout
	app.client.Limiter = redditsdk.NewLimiter(app.cfg.Upstream.RequestsPerMinute)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.feedService = &service.FeedService{Upstream: app.client}
	app.threadService = &service.ThreadService{Upstream: app.client}
	app.mutationService = &service.MutationService{Upstream: app.client}
	app.accountService = &service.AccountService{Upstream: app.client}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.tokens, app.cfg.APIKey, BuildVersion, app.logger)

	router.FeedService = app.feedService
	router.ThreadService = app.threadService
	router.MutationService = app.mutationService
	router.AccountService = app.accountService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
