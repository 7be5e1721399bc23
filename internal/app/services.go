package app

import (
	"gorm.io/gorm"

	"github.com/crumbs/restaurant-service/internal/data/aggregates"
	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
	"github.com/crumbs/restaurant-service/internal/observability"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
	"github.com/crumbs/restaurant-service/internal/services"
)

type Services struct {
	RestaurantAggregate domainagg.RestaurantAggregate

	Restaurants services.RestaurantService
	Query       services.QueryService
	Seeder      *services.Seeder
}

func wireServices(db *gorm.DB, log *logger.Logger, metrics *observability.Metrics, r Repos) Services {
	log.Info("Wiring services...")
	agg := aggregates.NewRestaurantAggregate(aggregates.RestaurantAggregateDeps{
		Base: aggregates.BaseDeps{
			DB:    db,
			Log:   log,
			Hooks: aggregates.NewMetricsHooks(metrics, log),
		},
		UserDetails: r.UserDetail,
		Owners:      r.RestaurantOwner,
		Locations:   r.Location,
		Categories:  r.Category,
		Links:       r.RestaurantCategory,
		Restaurants: r.Restaurant,
		MenuItems:   r.MenuItem,
	})
	return Services{
		RestaurantAggregate: agg,
		Restaurants:         services.NewRestaurantService(log, agg),
		Query:               services.NewQueryService(log, r.Restaurant, r.MenuItem, r.Category),
		Seeder:              services.NewSeeder(db, log, agg, r.Category, r.Restaurant, r.MenuItem),
	}
}
