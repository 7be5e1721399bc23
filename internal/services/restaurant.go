package services

import (
	"context"

	types "github.com/crumbs/restaurant-service/internal/domain"
	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
	"github.com/crumbs/restaurant-service/internal/pkg/ctxutil"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

// RestaurantService validates write payloads and hands them to the restaurant aggregate.
type RestaurantService interface {
	AddRestaurant(ctx context.Context, p AddRestaurantPayload) (*types.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurantID uint, p UpdateRestaurantPayload) (*types.Restaurant, error)
	DeleteRestaurant(ctx context.Context, restaurantID uint) (*types.Restaurant, error)
}

type restaurantService struct {
	log *logger.Logger
	agg domainagg.RestaurantAggregate
}

func NewRestaurantService(log *logger.Logger, agg domainagg.RestaurantAggregate) RestaurantService {
	return &restaurantService{
		log: log.With("service", "RestaurantService"),
		agg: agg,
	}
}

func (s *restaurantService) AddRestaurant(ctx context.Context, p AddRestaurantPayload) (*types.Restaurant, error) {
	in, err := NewAddRestaurantInput(p)
	if err != nil {
		return nil, err
	}
	r, err := s.agg.AddRestaurant(ctx, in)
	if err != nil {
		s.logFailure(ctx, "add restaurant failed", err, "name", in.Name)
		return nil, err
	}
	s.log.Info("Restaurant added",
		"request_id", ctxutil.RequestID(ctx),
		"restaurant_id", r.ID,
		"categories", len(r.Categories),
	)
	return r, nil
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, restaurantID uint, p UpdateRestaurantPayload) (*types.Restaurant, error) {
	in, err := NewUpdateRestaurantInput(restaurantID, p)
	if err != nil {
		return nil, err
	}
	r, err := s.agg.UpdateRestaurant(ctx, in)
	if err != nil {
		s.logFailure(ctx, "update restaurant failed", err, "restaurant_id", restaurantID)
		return nil, err
	}
	s.log.Info("Restaurant updated", "request_id", ctxutil.RequestID(ctx), "restaurant_id", r.ID)
	return r, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, restaurantID uint) (*types.Restaurant, error) {
	r, err := s.agg.DeleteRestaurant(ctx, restaurantID)
	if err != nil {
		s.logFailure(ctx, "delete restaurant failed", err, "restaurant_id", restaurantID)
		return nil, err
	}
	s.log.Info("Restaurant deleted", "request_id", ctxutil.RequestID(ctx), "restaurant_id", r.ID)
	return r, nil
}

// logFailure logs caller mistakes at debug and everything else at error.
func (s *restaurantService) logFailure(ctx context.Context, msg string, err error, kv ...any) {
	kv = append(kv, "request_id", ctxutil.RequestID(ctx), "code", domainagg.CodeOf(err), "error", err)
	switch domainagg.CodeOf(err) {
	case domainagg.CodeValidation, domainagg.CodeNotFound, domainagg.CodeDuplicateField:
		s.log.Debug(msg, kv...)
	default:
		s.log.Error(msg, kv...)
	}
}
