package app

import (
	"gorm.io/gorm"

	"github.com/crumbs/restaurant-service/internal/data/repos"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

type Repos struct {
	UserDetail         repos.UserDetailRepo
	RestaurantOwner    repos.RestaurantOwnerRepo
	Location           repos.LocationRepo
	Category           repos.CategoryRepo
	RestaurantCategory repos.RestaurantCategoryRepo
	Restaurant         repos.RestaurantRepo
	MenuItem           repos.MenuItemRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		UserDetail:         repos.NewUserDetailRepo(db, log),
		RestaurantOwner:    repos.NewRestaurantOwnerRepo(db, log),
		Location:           repos.NewLocationRepo(db, log),
		Category:           repos.NewCategoryRepo(db, log),
		RestaurantCategory: repos.NewRestaurantCategoryRepo(db, log),
		Restaurant:         repos.NewRestaurantRepo(db, log),
		MenuItem:           repos.NewMenuItemRepo(db, log),
	}
}
