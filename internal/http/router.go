package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/crumbs/restaurant-service/internal/http/handlers"
	httpMW "github.com/crumbs/restaurant-service/internal/http/middleware"
	"github.com/crumbs/restaurant-service/internal/observability"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware

	RestaurantHandler *httpH.RestaurantHandler
	MenuItemHandler   *httpH.MenuItemHandler
	CategoryHandler   *httpH.CategoryHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins...))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Restaurants (public reads)
		if cfg.RestaurantHandler != nil {
			api.GET("/restaurants", cfg.RestaurantHandler.ListRestaurants)
			api.GET("/restaurants/search", cfg.RestaurantHandler.SearchByName)
			api.GET("/restaurants/search/menu-items", cfg.RestaurantHandler.SearchByMenuItem)
			api.GET("/restaurants/:id", cfg.RestaurantHandler.GetRestaurant)
			api.GET("/restaurants/:id/menu-items", cfg.RestaurantHandler.ListMenuItems)
			api.GET("/owners/:id/restaurants", cfg.RestaurantHandler.ListOwnerRestaurants)
		}

		// Menu items
		if cfg.MenuItemHandler != nil {
			api.GET("/menu-items", cfg.MenuItemHandler.ListMenuItems)
			api.GET("/menu-items/search", cfg.MenuItemHandler.SearchMenuItems)
		}

		// Categories
		if cfg.CategoryHandler != nil {
			api.GET("/categories", cfg.CategoryHandler.ListCategories)
		}
	}

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Restaurants (writes)
		if cfg.RestaurantHandler != nil {
			protected.POST("/restaurants", cfg.RestaurantHandler.CreateRestaurant)
			protected.PUT("/restaurants/:id", cfg.RestaurantHandler.UpdateRestaurant)
			protected.DELETE("/restaurants/:id", cfg.RestaurantHandler.DeleteRestaurant)
		}
	}

	return r
}
