package services

import (
	"context"
	"testing"

	types "github.com/crumbs/restaurant-service/internal/domain"
	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
)

func seededQueryService(t *testing.T) (QueryService, testStack) {
	t.Helper()
	st := newTestStack(t)
	if _, err := st.seeder().Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return NewQueryService(st.log, st.restaurants, st.menuItems, st.categories), st
}

func TestQueryServiceSearchRestaurantsByNameIsCaseInsensitive(t *testing.T) {
	qs, _ := seededQueryService(t)
	dbc := dbctx.Background()

	for _, q := range []string{"mc", "MC", "donald"} {
		page, err := qs.SearchRestaurantsByName(dbc, q, types.PageRequest{})
		if err != nil {
			t.Fatalf("SearchRestaurantsByName(%q): %v", q, err)
		}
		if page.Total != 1 || page.Items[0].Name != "McDonald's" {
			t.Fatalf("SearchRestaurantsByName(%q): %+v", q, page)
		}
	}

	_, err := qs.SearchRestaurantsByName(dbc, "  ", types.PageRequest{})
	if !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("blank query: expected validation, got %v", err)
	}
}

func TestQueryServiceMenuItemQueries(t *testing.T) {
	qs, _ := seededQueryService(t)
	dbc := dbctx.Background()

	rs, err := qs.SearchRestaurantsByMenuItem(dbc, "menuitem-9", types.PageRequest{Sort: "name"})
	if err != nil {
		t.Fatalf("SearchRestaurantsByMenuItem: %v", err)
	}
	if rs.Total != 2 || rs.Items[0].Name != "KFC" {
		t.Fatalf("SearchRestaurantsByMenuItem: %+v", rs)
	}

	items, err := qs.SearchMenuItems(dbc, "MenuItem-1", types.PageRequest{})
	if err != nil {
		t.Fatalf("SearchMenuItems: %v", err)
	}
	if items.Total != 2 {
		t.Fatalf("SearchMenuItems: want 2 (one per restaurant), got %d", items.Total)
	}

	all, err := qs.ListMenuItems(dbc, types.PageRequest{Size: 5})
	if err != nil {
		t.Fatalf("ListMenuItems: %v", err)
	}
	if all.Total != 20 || len(all.Items) != 5 || all.TotalPages() != 4 {
		t.Fatalf("ListMenuItems: %+v", all)
	}

	kfc := rs.Items[0]
	byRestaurant, err := qs.ListMenuItemsByRestaurant(dbc, kfc.ID, types.PageRequest{})
	if err != nil {
		t.Fatalf("ListMenuItemsByRestaurant: %v", err)
	}
	if byRestaurant.Total != 10 {
		t.Fatalf("ListMenuItemsByRestaurant: %d", byRestaurant.Total)
	}
	for _, it := range byRestaurant.Items {
		if it.RestaurantID != kfc.ID {
			t.Fatalf("foreign menu item %+v", it)
		}
	}

	_, err = qs.ListMenuItemsByRestaurant(dbc, 9999, types.PageRequest{})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("missing restaurant: expected not_found, got %v", err)
	}
}

func TestQueryServiceListings(t *testing.T) {
	qs, _ := seededQueryService(t)
	dbc := dbctx.Background()

	page, err := qs.ListRestaurants(dbc, types.PageRequest{})
	if err != nil {
		t.Fatalf("ListRestaurants: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("ListRestaurants: %+v", page)
	}

	first := page.Items[0]
	owned, err := qs.ListRestaurantsByOwner(dbc, first.OwnerID)
	if err != nil {
		t.Fatalf("ListRestaurantsByOwner: %v", err)
	}
	if len(owned) != 1 || owned[0].ID != first.ID {
		t.Fatalf("ListRestaurantsByOwner: %+v", owned)
	}
	none, err := qs.ListRestaurantsByOwner(dbc, 424242)
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("ListRestaurantsByOwner(unknown): %v %v", none, err)
	}

	got, err := qs.GetRestaurant(dbc, first.ID)
	if err != nil || got.Location.Street == "" {
		t.Fatalf("GetRestaurant: %+v %v", got, err)
	}
	if _, err := qs.GetRestaurant(dbc, 9999); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("GetRestaurant(missing): expected not_found, got %v", err)
	}

	cats, err := qs.ListCategories(dbc)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 9 || cats[0].Name != "American" {
		t.Fatalf("ListCategories: %+v", cats)
	}
}
