package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ruva-app/ruva-backend/internal/config"
	"github.com/ruva-app/ruva-backend/internal/database"
	"github.com/ruva-app/ruva-backend/internal/diagnostic"
	"github.com/ruva-app/ruva-backend/internal/handler"
	"github.com/ruva-app/ruva-backend/internal/logging"
	"github.com/ruva-app/ruva-backend/internal/metrics"
	"github.com/ruva-app/ruva-backend/internal/middleware"
	"github.com/ruva-app/ruva-backend/internal/router"
	"github.com/ruva-app/ruva-backend/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.Development(),
		zap.String("service", cfg.AppName), zap.String("version", cfg.Version))
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := metrics.New(cfg.AppName)
	if err != nil {
		logger.Fatal("metrics setup failed", zap.Error(err))
	}

	// The database module is optional; resolve it once and report how it went.
	dbModule := database.NewModule(database.Settings{
		Driver: cfg.DatabaseDriver,
		URL:    cfg.DatabaseURL,
		Name:   cfg.DatabaseName,
	})
	defer func() {
		if err := dbModule.Close(); err != nil {
			logger.Warn("closing database handle", zap.Error(err))
		}
	}()
	res := dbModule.Resolve()
	logger.Info("database module resolved",
		zap.Stringer("kind", res.Kind),
		zap.Bool("handle", res.Handle != nil),
		zap.String("driver", cfg.DatabaseDriver),
		zap.Error(res.Err))

	probe := diagnostic.New(dbModule.Resolve,
		diagnostic.WithLogger(logger.Named("diagnostic")),
		diagnostic.WithRecorder(m))

	var publisher handler.EventPublisher
	if cfg.EventsEnabled {
		if cfg.BrokerURL == "" {
			logger.Warn("diagnostic events enabled but RABBITMQ_URL/AMQP_URL not set; events disabled")
		} else {
			publisher = service.NewQueuePublisher(cfg.BrokerURL, logger.Named("rabbitmq"))
		}
	}

	cacheCfg := config.LoadCacheConfig()
	var cache echo.MiddlewareFunc
	if cacheCfg.Enabled {
		rdb := config.NewRedisClient(ctx)
		if rdb == nil {
			logger.Warn("redis unreachable; response cache disabled")
		} else {
			defer func() { _ = rdb.Close() }()
			cache = middleware.ResponseCache(cacheCfg, rdb, logger.Named("cache"))
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestLog(logger.Named("http")))
	e.Use(middleware.Metrics(m))
	e.Use(middleware.CORS())

	router.RegisterRoutes(e, m.Handler())
	router.RegisterContent(e, cache)
	router.RegisterDiagnostic(e, handler.NewDiagnosticHandler(probe, publisher, cfg.AppName, logger.Named("diagnostic")))

	addr := cfg.Addr()
	go func() {
		logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server exited")
}
