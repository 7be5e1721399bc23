package services

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gorm.io/gorm"

	dbpkg "github.com/crumbs/restaurant-service/internal/data/db"
	"github.com/crumbs/restaurant-service/internal/data/repos"
	types "github.com/crumbs/restaurant-service/internal/domain"
	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

// SampleCategories is the seeded category list, repeats included.
var SampleCategories = []string{
	"American", "Burger", "Japanese", "French", "Italian",
	"Pizza", "Chicken", "Burger", "Healthy", "Fine Dining",
}

type sampleRestaurant struct {
	in     domainagg.AddRestaurantInput
	rating int
}

var sampleRestaurants = []sampleRestaurant{
	{
		in: domainagg.AddRestaurantInput{
			OwnerFirstName: "Jonathan",
			OwnerLastName:  "Frey",
			OwnerEmail:     "jfrey2704@smoothstack.com",
			Street:         "1111 Street A",
			City:           "Los Angeles",
			ZipCode:        12345,
			State:          "CA",
			Name:           "KFC",
			PriceRating:    1,
			Categories:     []string{"Chicken", "American"},
		},
		rating: 5,
	},
	{
		in: domainagg.AddRestaurantInput{
			OwnerFirstName: "Ray",
			OwnerLastName:  "Kroc",
			OwnerEmail:     "rkroc@smoothstack.com",
			Street:         "2222 Street B",
			City:           "Los Angeles",
			ZipCode:        12345,
			State:          "CA",
			Name:           "McDonald's",
			PriceRating:    2,
			Categories:     []string{"Burger", "American"},
		},
		rating: 3,
	},
}

const sampleMenuItemsPerRestaurant = 10

type SeedResult struct {
	Categories  int
	Restaurants int
	MenuItems   int
}

// Seeder replaces the whole store with the sample directory.
type Seeder struct {
	db          *gorm.DB
	log         *logger.Logger
	agg         domainagg.RestaurantAggregate
	categories  repos.CategoryRepo
	restaurants repos.RestaurantRepo
	menuItems   repos.MenuItemRepo
	rng         *rand.Rand
}

func NewSeeder(
	db *gorm.DB,
	log *logger.Logger,
	agg domainagg.RestaurantAggregate,
	categories repos.CategoryRepo,
	restaurants repos.RestaurantRepo,
	menuItems repos.MenuItemRepo,
) *Seeder {
	now := uint64(time.Now().UnixNano())
	return &Seeder{
		db:          db,
		log:         log.With("service", "Seeder"),
		agg:         agg,
		categories:  categories,
		restaurants: restaurants,
		menuItems:   menuItems,
		rng:         rand.New(rand.NewPCG(now, now>>1)),
	}
}

func (s *Seeder) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return dbpkg.WipeAll(tx)
	}); err != nil {
		return res, fmt.Errorf("wipe: %w", err)
	}

	dbc := dbctx.From(ctx)
	seen := map[string]struct{}{}
	var cats []*types.Category
	for _, name := range SampleCategories {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		cats = append(cats, &types.Category{Name: name})
	}
	if _, err := s.categories.Create(dbc, cats); err != nil {
		return res, fmt.Errorf("seed categories: %w", err)
	}
	res.Categories = len(cats)

	for _, sample := range sampleRestaurants {
		r, err := s.agg.AddRestaurant(ctx, sample.in)
		if err != nil {
			return res, fmt.Errorf("seed restaurant %q: %w", sample.in.Name, err)
		}
		r.Rating = sample.rating
		if err := s.restaurants.Save(dbc, r); err != nil {
			return res, fmt.Errorf("seed rating %q: %w", sample.in.Name, err)
		}
		res.Restaurants++

		items := make([]*types.MenuItem, 0, sampleMenuItemsPerRestaurant)
		for i := 0; i < sampleMenuItemsPerRestaurant; i++ {
			items = append(items, &types.MenuItem{
				RestaurantID: r.ID,
				Name:         fmt.Sprintf("MenuItem-%d", i),
				Price:        s.samplePrice(i),
				Description:  "Menu Item for a restaurant",
			})
		}
		if _, err := s.menuItems.Create(dbc, items); err != nil {
			return res, fmt.Errorf("seed menu items %q: %w", sample.in.Name, err)
		}
		res.MenuItems += len(items)
	}

	s.log.Info("Sample data seeded",
		"categories", res.Categories,
		"restaurants", res.Restaurants,
		"menu_items", res.MenuItems,
	)
	return res, nil
}

// samplePrice is 3 plus up to i+1, rounded to cents.
func (s *Seeder) samplePrice(i int) float64 {
	p := float64(i+1)*s.rng.Float64() + 3
	return math.Round(p*100) / 100
}
