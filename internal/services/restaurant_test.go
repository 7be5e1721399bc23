package services

import (
	"context"
	"testing"

	types "github.com/crumbs/restaurant-service/internal/domain"
	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

func TestRestaurantServiceValidatesBeforeAggregate(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	fakeAgg := &fakeRestaurantAggregate{}
	svc := NewRestaurantService(log, fakeAgg)

	p := validAddPayload()
	p.State = "California"
	if _, err := svc.AddRestaurant(context.Background(), p); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("expected validation, got %v", err)
	}
	if fakeAgg.addCalls != 0 {
		t.Fatalf("aggregate should not be called on invalid payload")
	}

	if _, err := svc.AddRestaurant(context.Background(), validAddPayload()); err != nil {
		t.Fatalf("AddRestaurant: %v", err)
	}
	if fakeAgg.addCalls != 1 || fakeAgg.lastAdd.ZipCode != 1234 || fakeAgg.lastAdd.Categories[0] != "Chicken" {
		t.Fatalf("aggregate input: calls=%d in=%+v", fakeAgg.addCalls, fakeAgg.lastAdd)
	}
}

func TestRestaurantServiceUpdateAndDeleteDelegate(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	fakeAgg := &fakeRestaurantAggregate{}
	svc := NewRestaurantService(log, fakeAgg)

	if _, err := svc.UpdateRestaurant(context.Background(), 3, UpdateRestaurantPayload{Name: "Renamed"}); err != nil {
		t.Fatalf("UpdateRestaurant: %v", err)
	}
	if fakeAgg.lastUpdate.RestaurantID != 3 || fakeAgg.lastUpdate.Name != "Renamed" {
		t.Fatalf("update input: %+v", fakeAgg.lastUpdate)
	}

	fakeAgg.err = domainagg.NewError(domainagg.CodeNotFound, "Restaurants.Delete", "restaurant not found: 3", nil)
	if _, err := svc.DeleteRestaurant(context.Background(), 3); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("expected not_found passthrough, got %v", err)
	}
	if fakeAgg.lastDelete != 3 {
		t.Fatalf("delete id: %d", fakeAgg.lastDelete)
	}
}

func TestRestaurantServiceEndToEnd(t *testing.T) {
	st := newTestStack(t)
	svc := NewRestaurantService(st.log, st.agg)
	ctx := context.Background()
	if _, err := st.categories.Create(dbctx.From(ctx), []*types.Category{{Name: "Chicken"}}); err != nil {
		t.Fatalf("seed category: %v", err)
	}

	r, err := svc.AddRestaurant(ctx, validAddPayload())
	if err != nil {
		t.Fatalf("AddRestaurant: %v", err)
	}
	_, err = svc.AddRestaurant(ctx, validAddPayload())
	if got := domainagg.DuplicateFields(err); len(got) != 2 {
		t.Fatalf("expected email and street duplicates, got %v (%v)", got, err)
	}

	updated, err := svc.UpdateRestaurant(ctx, r.ID, UpdateRestaurantPayload{OwnerEmail: "jfrey@example.com", City: "Burbank"})
	if err != nil {
		t.Fatalf("UpdateRestaurant with own email: %v", err)
	}
	if updated.Location.City != "Burbank" || len(updated.Categories) != 1 {
		t.Fatalf("updated: %+v", updated)
	}

	if _, err := svc.DeleteRestaurant(ctx, r.ID); err != nil {
		t.Fatalf("DeleteRestaurant: %v", err)
	}
	if _, err := svc.DeleteRestaurant(ctx, r.ID); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("second delete: expected not_found, got %v", err)
	}
}

type fakeRestaurantAggregate struct {
	err        error
	addCalls   int
	lastAdd    domainagg.AddRestaurantInput
	lastUpdate domainagg.UpdateRestaurantInput
	lastDelete uint
}

func (f *fakeRestaurantAggregate) Contract() domainagg.Contract {
	return domainagg.RestaurantAggregateContract
}

func (f *fakeRestaurantAggregate) AddRestaurant(_ context.Context, in domainagg.AddRestaurantInput) (*types.Restaurant, error) {
	f.addCalls++
	f.lastAdd = in
	if f.err != nil {
		return nil, f.err
	}
	return &types.Restaurant{ID: 1, Name: in.Name}, nil
}

func (f *fakeRestaurantAggregate) UpdateRestaurant(_ context.Context, in domainagg.UpdateRestaurantInput) (*types.Restaurant, error) {
	f.lastUpdate = in
	if f.err != nil {
		return nil, f.err
	}
	return &types.Restaurant{ID: in.RestaurantID, Name: in.Name}, nil
}

func (f *fakeRestaurantAggregate) DeleteRestaurant(_ context.Context, id uint) (*types.Restaurant, error) {
	f.lastDelete = id
	if f.err != nil {
		return nil, f.err
	}
	return &types.Restaurant{ID: id}, nil
}
