package app

import (
	apphttp "github.com/crumbs/restaurant-service/internal/http"
	"github.com/crumbs/restaurant-service/internal/observability"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

func wireRouterConfig(cfg Config, log *logger.Logger, metrics *observability.Metrics, handlers Handlers, middleware Middleware) apphttp.RouterConfig {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return apphttp.RouterConfig{
		Log:               log,
		Metrics:           metrics,
		ServiceName:       serviceName,
		CORSOrigins:       cfg.CORSOrigins,
		AuthMiddleware:    middleware.Auth,
		RestaurantHandler: handlers.Restaurant,
		MenuItemHandler:   handlers.MenuItem,
		CategoryHandler:   handlers.Category,
		HealthHandler:     handlers.Health,
	}
}
