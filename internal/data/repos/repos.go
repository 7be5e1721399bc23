package repos

import (
	"gorm.io/gorm"

	"github.com/crumbs/restaurant-service/internal/data/repos/restaurant"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

type UserDetailRepo = restaurant.UserDetailRepo
type RestaurantOwnerRepo = restaurant.RestaurantOwnerRepo
type LocationRepo = restaurant.LocationRepo

type CategoryRepo = restaurant.CategoryRepo
type RestaurantCategoryRepo = restaurant.RestaurantCategoryRepo

type RestaurantRepo = restaurant.RestaurantRepo
type MenuItemRepo = restaurant.MenuItemRepo

func NewUserDetailRepo(db *gorm.DB, baseLog *logger.Logger) UserDetailRepo {
	return restaurant.NewUserDetailRepo(db, baseLog)
}
func NewRestaurantOwnerRepo(db *gorm.DB, baseLog *logger.Logger) RestaurantOwnerRepo {
	return restaurant.NewRestaurantOwnerRepo(db, baseLog)
}
func NewLocationRepo(db *gorm.DB, baseLog *logger.Logger) LocationRepo {
	return restaurant.NewLocationRepo(db, baseLog)
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return restaurant.NewCategoryRepo(db, baseLog)
}
func NewRestaurantCategoryRepo(db *gorm.DB, baseLog *logger.Logger) RestaurantCategoryRepo {
	return restaurant.NewRestaurantCategoryRepo(db, baseLog)
}

func NewRestaurantRepo(db *gorm.DB, baseLog *logger.Logger) RestaurantRepo {
	return restaurant.NewRestaurantRepo(db, baseLog)
}
func NewMenuItemRepo(db *gorm.DB, baseLog *logger.Logger) MenuItemRepo {
	return restaurant.NewMenuItemRepo(db, baseLog)
}
