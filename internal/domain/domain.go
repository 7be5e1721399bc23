package domain

import "github.com/crumbs/restaurant-service/internal/domain/restaurant"

type UserDetail = restaurant.UserDetail
type RestaurantOwner = restaurant.RestaurantOwner
type Location = restaurant.Location
type Category = restaurant.Category
type RestaurantCategory = restaurant.RestaurantCategory
type Restaurant = restaurant.Restaurant
type MenuItem = restaurant.MenuItem

type PageRequest = restaurant.PageRequest
type Page[T any] = restaurant.Page[T]

const (
	RestaurantStatusActive = restaurant.StatusActive
	MinPriceRating         = restaurant.MinPriceRating
	MaxPriceRating         = restaurant.MaxPriceRating
)

func CategoryNames(links []RestaurantCategory) []string { return restaurant.CategoryNames(links) }

// AllModels lists every persisted entity in migration order.
func AllModels() []any {
	return []any{
		&UserDetail{},
		&RestaurantOwner{},
		&Location{},
		&Category{},
		&Restaurant{},
		&RestaurantCategory{},
		&MenuItem{},
	}
}
