package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/crumbs/restaurant-service/internal/data/aggregates"
	"github.com/crumbs/restaurant-service/internal/data/repos"
	repotest "github.com/crumbs/restaurant-service/internal/data/repos/testutil"
	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

type testStack struct {
	db          *gorm.DB
	log         *logger.Logger
	agg         domainagg.RestaurantAggregate
	restaurants repos.RestaurantRepo
	menuItems   repos.MenuItemRepo
	categories  repos.CategoryRepo
}

func newTestStack(t *testing.T) testStack {
	t.Helper()
	db := repotest.DB(t)
	log := repotest.Logger(t)
	st := testStack{
		db:          db,
		log:         log,
		restaurants: repos.NewRestaurantRepo(db, log),
		menuItems:   repos.NewMenuItemRepo(db, log),
		categories:  repos.NewCategoryRepo(db, log),
	}
	st.agg = aggregates.NewRestaurantAggregate(aggregates.RestaurantAggregateDeps{
		Base:        aggregates.BaseDeps{DB: db, Log: log},
		UserDetails: repos.NewUserDetailRepo(db, log),
		Owners:      repos.NewRestaurantOwnerRepo(db, log),
		Locations:   repos.NewLocationRepo(db, log),
		Categories:  st.categories,
		Links:       repos.NewRestaurantCategoryRepo(db, log),
		Restaurants: st.restaurants,
		MenuItems:   st.menuItems,
	})
	return st
}

func (st testStack) seeder() *Seeder {
	return NewSeeder(st.db, st.log, st.agg, st.categories, st.restaurants, st.menuItems)
}
