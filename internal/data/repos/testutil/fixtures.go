package testutil

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/gorm"

	types "github.com/crumbs/restaurant-service/internal/domain"
)

func SeedCategories(tb testing.TB, ctx context.Context, tx *gorm.DB, names ...string) []*types.Category {
	tb.Helper()
	out := make([]*types.Category, 0, len(names))
	for _, n := range names {
		c := &types.Category{Name: n}
		if err := tx.WithContext(ctx).Create(c).Error; err != nil {
			tb.Fatalf("seed category %q: %v", n, err)
		}
		out = append(out, c)
	}
	return out
}

// RestaurantSeed describes one restaurant aggregate to insert directly.
type RestaurantSeed struct {
	Name        string
	Email       string
	Street      string
	PriceRating int
	Categories  []string
	MenuItems   []string
}

// SeedRestaurant writes a complete aggregate row-by-row, bypassing the aggregate writer.
func SeedRestaurant(tb testing.TB, ctx context.Context, tx *gorm.DB, s RestaurantSeed) *types.Restaurant {
	tb.Helper()
	t := tx.WithContext(ctx)

	if s.PriceRating == 0 {
		s.PriceRating = 2
	}
	ud := &types.UserDetail{FirstName: "Owner", LastName: "Of " + s.Name, Email: s.Email}
	if err := t.Create(ud).Error; err != nil {
		tb.Fatalf("seed user detail: %v", err)
	}
	owner := &types.RestaurantOwner{UserDetailID: ud.ID}
	if err := t.Omit("UserDetail").Create(owner).Error; err != nil {
		tb.Fatalf("seed owner: %v", err)
	}
	loc := &types.Location{Street: s.Street, City: "Los Angeles", ZipCode: 12345, State: "CA"}
	if err := t.Create(loc).Error; err != nil {
		tb.Fatalf("seed location: %v", err)
	}
	r := &types.Restaurant{
		Name:        s.Name,
		PriceRating: s.PriceRating,
		Status:      types.RestaurantStatusActive,
		LocationID:  loc.ID,
		OwnerID:     owner.ID,
	}
	if err := t.Omit("Location", "Owner", "Categories", "MenuItems").Create(r).Error; err != nil {
		tb.Fatalf("seed restaurant: %v", err)
	}
	for _, c := range s.Categories {
		link := &types.RestaurantCategory{RestaurantID: r.ID, CategoryName: c}
		if err := t.Omit("Category").Create(link).Error; err != nil {
			tb.Fatalf("seed restaurant category %q: %v", c, err)
		}
	}
	for i, name := range s.MenuItems {
		mi := &types.MenuItem{
			RestaurantID: r.ID,
			Name:         name,
			Price:        float64(i + 1),
			Description:  fmt.Sprintf("%s at %s", name, s.Name),
		}
		if err := t.Create(mi).Error; err != nil {
			tb.Fatalf("seed menu item %q: %v", name, err)
		}
	}
	r.Location = *loc
	owner.UserDetail = *ud
	r.Owner = *owner
	return r
}

func CountRows(tb testing.TB, ctx context.Context, tx *gorm.DB, model any) int64 {
	tb.Helper()
	var n int64
	if err := tx.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
		tb.Fatalf("count %T: %v", model, err)
	}
	return n
}
