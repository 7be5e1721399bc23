package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	dbpkg "github.com/crumbs/restaurant-service/internal/data/db"
	apphttp "github.com/crumbs/restaurant-service/internal/http"
	"github.com/crumbs/restaurant-service/internal/observability"
	"github.com/crumbs/restaurant-service/internal/pkg/envutil"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
	"github.com/crumbs/restaurant-service/internal/services"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Metrics  *observability.Metrics
	Repos    Repos
	Services Services
	Server   *apphttp.Server

	metricsSrv   *metricsServer
	shutdownOTel func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	log, err := logger.New(envutil.String("LOG_MODE", "development", nil), envutil.String("LOG_LEVEL", "", nil))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	shutdownOTel := observability.InitOTel(ctx, log, cfg.Otel)

	theDB, err := dbpkg.Open(cfg.DB, log)
	if err != nil {
		_ = shutdownOTel(ctx)
		log.Sync()
		return nil, fmt.Errorf("init db: %w", err)
	}

	metrics := observability.NewMetrics(log)
	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, metrics, reposet)
	handlerset := wireHandlers(theDB, log, serviceset)
	middleware := wireMiddleware(log, cfg)
	server := apphttp.NewServer(cfg.HTTPAddr, wireRouterConfig(cfg, log, metrics, handlerset, middleware))

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Metrics:      metrics,
		Repos:        reposet,
		Services:     serviceset,
		Server:       server,
		metricsSrv:   newMetricsServer(cfg.MetricsAddr, metrics),
		shutdownOTel: shutdownOTel,
	}, nil
}

// Seed replaces the store contents with the sample directory.
func (a *App) Seed(ctx context.Context) (services.SeedResult, error) {
	if a == nil || a.Services.Seeder == nil {
		return services.SeedResult{}, fmt.Errorf("app not initialized")
	}
	return a.Services.Seeder.Seed(ctx)
}

// Run serves the API (and metrics, when configured) until ctx is cancelled or a
// listener fails, then shuts both down within Cfg.ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.HTTPAddr)
		return a.Server.Run()
	})
	if a.metricsSrv != nil {
		g.Go(func() error {
			a.Log.Info("Metrics server listening", "addr", a.Cfg.MetricsAddr)
			return a.metricsSrv.Run()
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutting down servers...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		err := a.Server.Shutdown(shutdownCtx)
		if a.metricsSrv != nil {
			if mErr := a.metricsSrv.Shutdown(shutdownCtx); err == nil {
				err = mErr
			}
		}
		return err
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.shutdownOTel != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		if err := a.shutdownOTel(ctx); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
