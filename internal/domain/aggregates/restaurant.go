package aggregates

import (
	"context"

	"github.com/crumbs/restaurant-service/internal/domain/restaurant"
)

var RestaurantAggregateContract = Contract{
	Name:             "Directory.RestaurantAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
}

// RestaurantAggregate owns the restaurant consistency unit.
//
// Write failures return *aggregates.Error with codes:
// CodeValidation, CodeNotFound, CodeDuplicateField, CodeConflict, CodeRetryable, CodeInternal.
type RestaurantAggregate interface {
	Aggregate

	// AddRestaurant creates user detail, owner, location, restaurant and category links together.
	AddRestaurant(ctx context.Context, in AddRestaurantInput) (*restaurant.Restaurant, error)

	// UpdateRestaurant applies the non-blank fields of in. A non-nil Categories replaces the category set wholesale.
	UpdateRestaurant(ctx context.Context, in UpdateRestaurantInput) (*restaurant.Restaurant, error)

	// DeleteRestaurant removes the restaurant and everything it owns, returning the pre-delete snapshot.
	DeleteRestaurant(ctx context.Context, restaurantID uint) (*restaurant.Restaurant, error)
}

// AddRestaurantInput is a validated create payload.
type AddRestaurantInput struct {
	OwnerFirstName string
	OwnerLastName  string
	OwnerEmail     string

	Street  string
	City    string
	ZipCode int
	State   string

	Name        string
	PriceRating int
	Categories  []string
}

// UpdateRestaurantInput is a validated partial update. Blank strings and nil pointers mean "unchanged".
// A nil Categories leaves the current set alone; any non-nil slice replaces it, so an empty one clears it.
type UpdateRestaurantInput struct {
	RestaurantID uint

	OwnerFirstName string
	OwnerLastName  string
	OwnerEmail     string

	Street  string
	City    string
	ZipCode *int
	State   string

	Name        string
	PriceRating *int
	Categories  []string
}
