package services

import (
	"fmt"
	"strings"

	"github.com/crumbs/restaurant-service/internal/data/aggregates"
	"github.com/crumbs/restaurant-service/internal/data/repos"
	types "github.com/crumbs/restaurant-service/internal/domain"
	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

// QueryService is the read side of the directory. Nothing here writes.
type QueryService interface {
	ListRestaurants(dbc dbctx.Context, p types.PageRequest) (types.Page[*types.Restaurant], error)
	GetRestaurant(dbc dbctx.Context, id uint) (*types.Restaurant, error)
	ListRestaurantsByOwner(dbc dbctx.Context, ownerID uint) ([]*types.Restaurant, error)
	SearchRestaurantsByName(dbc dbctx.Context, q string, p types.PageRequest) (types.Page[*types.Restaurant], error)
	SearchRestaurantsByMenuItem(dbc dbctx.Context, q string, p types.PageRequest) (types.Page[*types.Restaurant], error)

	ListMenuItems(dbc dbctx.Context, p types.PageRequest) (types.Page[*types.MenuItem], error)
	SearchMenuItems(dbc dbctx.Context, q string, p types.PageRequest) (types.Page[*types.MenuItem], error)
	ListMenuItemsByRestaurant(dbc dbctx.Context, restaurantID uint, p types.PageRequest) (types.Page[*types.MenuItem], error)

	ListCategories(dbc dbctx.Context) ([]*types.Category, error)
}

type queryService struct {
	log         *logger.Logger
	restaurants repos.RestaurantRepo
	menuItems   repos.MenuItemRepo
	categories  repos.CategoryRepo
}

func NewQueryService(log *logger.Logger, restaurants repos.RestaurantRepo, menuItems repos.MenuItemRepo, categories repos.CategoryRepo) QueryService {
	return &queryService{
		log:         log.With("service", "QueryService"),
		restaurants: restaurants,
		menuItems:   menuItems,
		categories:  categories,
	}
}

func (s *queryService) ListRestaurants(dbc dbctx.Context, p types.PageRequest) (types.Page[*types.Restaurant], error) {
	out, err := s.restaurants.List(dbc, p)
	return out, aggregates.MapError("Query.ListRestaurants", err)
}

func (s *queryService) GetRestaurant(dbc dbctx.Context, id uint) (*types.Restaurant, error) {
	const op = "Query.GetRestaurant"
	r, err := s.restaurants.GetByID(dbc, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if r == nil {
		return nil, domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("restaurant not found: %d", id), nil)
	}
	return r, nil
}

func (s *queryService) ListRestaurantsByOwner(dbc dbctx.Context, ownerID uint) ([]*types.Restaurant, error) {
	out, err := s.restaurants.ListByOwnerID(dbc, ownerID)
	if err != nil {
		return nil, aggregates.MapError("Query.ListRestaurantsByOwner", err)
	}
	if out == nil {
		out = []*types.Restaurant{}
	}
	return out, nil
}

func (s *queryService) SearchRestaurantsByName(dbc dbctx.Context, q string, p types.PageRequest) (types.Page[*types.Restaurant], error) {
	const op = "Query.SearchRestaurantsByName"
	if err := requireQuery(op, "name", q); err != nil {
		return types.Page[*types.Restaurant]{}, err
	}
	out, err := s.restaurants.SearchByName(dbc, q, p)
	return out, aggregates.MapError(op, err)
}

func (s *queryService) SearchRestaurantsByMenuItem(dbc dbctx.Context, q string, p types.PageRequest) (types.Page[*types.Restaurant], error) {
	const op = "Query.SearchRestaurantsByMenuItem"
	if err := requireQuery(op, "q", q); err != nil {
		return types.Page[*types.Restaurant]{}, err
	}
	out, err := s.restaurants.SearchByMenuItemName(dbc, q, p)
	return out, aggregates.MapError(op, err)
}

func (s *queryService) ListMenuItems(dbc dbctx.Context, p types.PageRequest) (types.Page[*types.MenuItem], error) {
	out, err := s.menuItems.List(dbc, p)
	return out, aggregates.MapError("Query.ListMenuItems", err)
}

func (s *queryService) SearchMenuItems(dbc dbctx.Context, q string, p types.PageRequest) (types.Page[*types.MenuItem], error) {
	const op = "Query.SearchMenuItems"
	if err := requireQuery(op, "q", q); err != nil {
		return types.Page[*types.MenuItem]{}, err
	}
	out, err := s.menuItems.SearchByName(dbc, q, p)
	return out, aggregates.MapError(op, err)
}

func (s *queryService) ListMenuItemsByRestaurant(dbc dbctx.Context, restaurantID uint, p types.PageRequest) (types.Page[*types.MenuItem], error) {
	const op = "Query.ListMenuItemsByRestaurant"
	r, err := s.restaurants.GetByID(dbc, restaurantID)
	if err != nil {
		return types.Page[*types.MenuItem]{}, aggregates.MapError(op, err)
	}
	if r == nil {
		return types.Page[*types.MenuItem]{}, domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("restaurant not found: %d", restaurantID), nil)
	}
	out, err := s.menuItems.ListByRestaurantID(dbc, restaurantID, p)
	return out, aggregates.MapError(op, err)
}

func (s *queryService) ListCategories(dbc dbctx.Context) ([]*types.Category, error) {
	out, err := s.categories.List(dbc)
	if err != nil {
		return nil, aggregates.MapError("Query.ListCategories", err)
	}
	if out == nil {
		out = []*types.Category{}
	}
	return out, nil
}

func requireQuery(op, field, q string) error {
	if strings.TrimSpace(q) != "" {
		return nil
	}
	return domainagg.NewValidationError(op, domainagg.ValidationErrors{
		{Field: field, Rule: "required", Message: field + " is required"},
	})
}
