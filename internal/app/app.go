// Package app wires configuration, logging, storage, services, and the
// HTTP server into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/pulseboard/pulseboard-backend/internal/adapter/postgres"
	dashboardrepo "github.com/pulseboard/pulseboard-backend/internal/adapter/postgres/dashboard"
	layoutrepo "github.com/pulseboard/pulseboard-backend/internal/adapter/postgres/layout"
	sharerepo "github.com/pulseboard/pulseboard-backend/internal/adapter/postgres/share"
	widgetrepo "github.com/pulseboard/pulseboard-backend/internal/adapter/postgres/widget"
	"github.com/pulseboard/pulseboard-backend/internal/auth"
	"github.com/pulseboard/pulseboard-backend/internal/config"
	"github.com/pulseboard/pulseboard-backend/internal/service/access"
	"github.com/pulseboard/pulseboard-backend/internal/service/dashboard"
	"github.com/pulseboard/pulseboard-backend/internal/service/layout"
	"github.com/pulseboard/pulseboard-backend/internal/service/share"
	"github.com/pulseboard/pulseboard-backend/internal/service/widget"
	"github.com/pulseboard/pulseboard-backend/internal/transport/middleware"
	"github.com/pulseboard/pulseboard-backend/internal/transport/rest"
)

// tokenValidatorAdapter bridges the JWT manager to the auth middleware.
type tokenValidatorAdapter struct {
	jwt *auth.JWTManager
}

func (a tokenValidatorAdapter) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	return a.jwt.ValidateAccessToken(token)
}

// Run is the application entry point. It blocks until the context is
// cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	dashboards := dashboardrepo.New(pool)
	shares := sharerepo.New(pool)
	layouts := layoutrepo.New(pool)
	widgets := widgetrepo.New(pool)

	accessSvc := access.NewService(logger, dashboards, shares)
	dashboardSvc := dashboard.NewService(logger, dashboards, layouts, shares, accessSvc, txManager, dashboard.Limits{
		MaxWidgetsPerDashboard: cfg.Dashboard.MaxWidgetsPerDashboard,
	})
	layoutSvc := layout.NewService(logger, layouts, widgets, dashboards, accessSvc, txManager, layout.Limits{
		MaxWidgetsPerDashboard: cfg.Dashboard.MaxWidgetsPerDashboard,
		MaxBulkBatch:           cfg.Dashboard.MaxBulkBatch,
	})
	shareSvc := share.NewService(logger, shares, accessSvc)
	widgetSvc := widget.NewService(logger, widgets)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	mux := rest.NewRouter(rest.Handlers{
		Dashboard: rest.NewDashboardHandler(dashboardSvc, logger),
		Layout:    rest.NewLayoutHandler(layoutSvc, logger),
		Share:     rest.NewShareHandler(shareSvc, logger),
		Widget:    rest.NewWidgetHandler(widgetSvc, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokenValidatorAdapter{jwt: jwtManager}),
	}

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimitPerMin > 0 {
		limiter = middleware.NewRateLimiter(5 * time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMin))
	}

	handler := middleware.Chain(mws...)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
