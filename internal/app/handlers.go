package app

import (
	"gorm.io/gorm"

	httpH "github.com/crumbs/restaurant-service/internal/http/handlers"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Restaurant *httpH.RestaurantHandler
	MenuItem   *httpH.MenuItemHandler
	Category   *httpH.CategoryHandler
}

func wireHandlers(db *gorm.DB, log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(db),
		Restaurant: httpH.NewRestaurantHandler(log, services.Restaurants, services.Query),
		MenuItem:   httpH.NewMenuItemHandler(services.Query),
		Category:   httpH.NewCategoryHandler(services.Query),
	}
}
