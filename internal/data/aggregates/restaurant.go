package aggregates

import (
	"context"
	"fmt"
	"strings"

	"github.com/crumbs/restaurant-service/internal/data/repos"
	types "github.com/crumbs/restaurant-service/internal/domain"
	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
)

const (
	opAddRestaurant    = "Restaurants.Add"
	opUpdateRestaurant = "Restaurants.Update"
	opDeleteRestaurant = "Restaurants.Delete"
)

type RestaurantAggregateDeps struct {
	Base BaseDeps

	UserDetails repos.UserDetailRepo
	Owners      repos.RestaurantOwnerRepo
	Locations   repos.LocationRepo
	Categories  repos.CategoryRepo
	Links       repos.RestaurantCategoryRepo
	Restaurants repos.RestaurantRepo
	MenuItems   repos.MenuItemRepo
}

type restaurantAggregate struct {
	deps RestaurantAggregateDeps
	dups *DuplicateChecker
}

func NewRestaurantAggregate(deps RestaurantAggregateDeps) domainagg.RestaurantAggregate {
	deps.Base = deps.Base.withDefaults()
	deps.Base.Contract = domainagg.RestaurantAggregateContract
	deps.Base.Log = deps.Base.Log.With("aggregate", deps.Base.Contract.Name)
	return &restaurantAggregate{
		deps: deps,
		dups: NewDuplicateChecker(deps.UserDetails, deps.Locations),
	}
}

func (a *restaurantAggregate) Contract() domainagg.Contract {
	return a.deps.Base.Contract
}

func (a *restaurantAggregate) configured(op string) error {
	d := a.deps
	if d.UserDetails == nil || d.Owners == nil || d.Locations == nil || d.Categories == nil ||
		d.Links == nil || d.Restaurants == nil || d.MenuItems == nil {
		return domainagg.NewError(domainagg.CodeInternal, op, "restaurant aggregate repos not configured", nil)
	}
	return nil
}

func (a *restaurantAggregate) AddRestaurant(ctx context.Context, in domainagg.AddRestaurantInput) (*types.Restaurant, error) {
	const op = opAddRestaurant
	if err := a.configured(op); err != nil {
		return nil, err
	}
	in = normalizeAddInput(in)
	if err := domainagg.NewValidationError(op, checkAddInput(in)); err != nil {
		return nil, err
	}

	var out *types.Restaurant
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if err := a.dups.Require(dbc, op, in.OwnerEmail, in.Street); err != nil {
			return err
		}

		ud := &types.UserDetail{
			FirstName: in.OwnerFirstName,
			LastName:  in.OwnerLastName,
			Email:     in.OwnerEmail,
		}
		if err := a.deps.UserDetails.Create(dbc, ud); err != nil {
			return err
		}
		owner := &types.RestaurantOwner{UserDetailID: ud.ID}
		if err := a.deps.Owners.Create(dbc, owner); err != nil {
			return err
		}
		loc := &types.Location{
			Street:  in.Street,
			City:    in.City,
			ZipCode: in.ZipCode,
			State:   in.State,
		}
		if err := a.deps.Locations.Create(dbc, loc); err != nil {
			return err
		}
		r := &types.Restaurant{
			Name:        in.Name,
			PriceRating: in.PriceRating,
			Status:      types.RestaurantStatusActive,
			LocationID:  loc.ID,
			OwnerID:     owner.ID,
		}
		if err := a.deps.Restaurants.Create(dbc, r); err != nil {
			return err
		}
		if err := a.linkCategories(dbc, op, r.ID, in.Categories); err != nil {
			return err
		}

		loaded, err := a.deps.Restaurants.GetByID(dbc, r.ID)
		if err != nil {
			return err
		}
		if loaded == nil {
			return InvariantError(fmt.Sprintf("restaurant %d not readable after insert", r.ID))
		}
		out = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *restaurantAggregate) UpdateRestaurant(ctx context.Context, in domainagg.UpdateRestaurantInput) (*types.Restaurant, error) {
	const op = opUpdateRestaurant
	if err := a.configured(op); err != nil {
		return nil, err
	}
	in = normalizeUpdateInput(in)
	if err := domainagg.NewValidationError(op, checkUpdateInput(in)); err != nil {
		return nil, err
	}

	var out *types.Restaurant
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		cur, err := a.deps.Restaurants.LockByID(dbc, in.RestaurantID)
		if err != nil {
			return err
		}
		if cur == nil {
			return domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("restaurant not found: %d", in.RestaurantID), nil)
		}
		ud := cur.Owner.UserDetail
		loc := cur.Location

		// Values equal to the aggregate's own are not collisions.
		var email, street string
		if in.OwnerEmail != "" && in.OwnerEmail != ud.Email {
			email = in.OwnerEmail
		}
		if in.Street != "" && in.Street != loc.Street {
			street = in.Street
		}
		if err := a.dups.Require(dbc, op, email, street); err != nil {
			return err
		}

		if applyUserDetail(&ud, in) {
			if ud.ID == 0 {
				return InvariantError(fmt.Sprintf("restaurant %d has no owner user detail", cur.ID))
			}
			if err := a.deps.UserDetails.Save(dbc, &ud); err != nil {
				return err
			}
		}
		if applyLocation(&loc, in) {
			if loc.ID == 0 {
				return InvariantError(fmt.Sprintf("restaurant %d has no location", cur.ID))
			}
			if err := a.deps.Locations.Save(dbc, &loc); err != nil {
				return err
			}
		}
		if in.Name != "" {
			cur.Name = in.Name
		}
		if in.PriceRating != nil {
			cur.PriceRating = *in.PriceRating
		}
		if err := a.deps.Restaurants.Save(dbc, cur); err != nil {
			return err
		}

		if in.Categories != nil {
			if len(cur.Categories) > 0 {
				if _, err := a.deps.Links.DeleteByRestaurantID(dbc, cur.ID); err != nil {
					return err
				}
			}
			if err := a.linkCategories(dbc, op, cur.ID, in.Categories); err != nil {
				return err
			}
		}

		loaded, err := a.deps.Restaurants.GetByID(dbc, cur.ID)
		if err != nil {
			return err
		}
		if loaded == nil {
			return InvariantError(fmt.Sprintf("restaurant %d vanished during update", cur.ID))
		}
		out = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *restaurantAggregate) DeleteRestaurant(ctx context.Context, restaurantID uint) (*types.Restaurant, error) {
	const op = opDeleteRestaurant
	if err := a.configured(op); err != nil {
		return nil, err
	}
	if restaurantID == 0 {
		return nil, domainagg.NewValidationError(op, domainagg.ValidationErrors{
			{Field: "id", Rule: "required", Message: "restaurant id is required"},
		})
	}

	var out *types.Restaurant
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		cur, err := a.deps.Restaurants.LockByID(dbc, restaurantID)
		if err != nil {
			return err
		}
		if cur == nil {
			return domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("restaurant not found: %d", restaurantID), nil)
		}

		if _, err := a.deps.Links.DeleteByRestaurantID(dbc, cur.ID); err != nil {
			return err
		}
		if _, err := a.deps.MenuItems.DeleteByRestaurantID(dbc, cur.ID); err != nil {
			return err
		}
		if err := a.deps.Restaurants.DeleteByID(dbc, cur.ID); err != nil {
			return err
		}
		if err := a.deps.Locations.DeleteByID(dbc, cur.LocationID); err != nil {
			return err
		}
		if err := a.deps.Owners.DeleteByID(dbc, cur.OwnerID); err != nil {
			return err
		}
		if id := cur.Owner.UserDetailID; id != 0 {
			if err := a.deps.UserDetails.DeleteByID(dbc, id); err != nil {
				return err
			}
		}
		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// linkCategories inserts one association per name. Every name must already exist as a Category.
func (a *restaurantAggregate) linkCategories(dbc dbctx.Context, op string, restaurantID uint, names []string) error {
	if len(names) == 0 {
		return nil
	}
	existing, err := a.deps.Categories.GetByNames(dbc, names)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		known[c.Name] = struct{}{}
	}
	var missing domainagg.ValidationErrors
	rows := make([]*types.RestaurantCategory, 0, len(names))
	for _, n := range names {
		if _, ok := known[n]; !ok {
			missing = append(missing, domainagg.FieldError{
				Field:   "categories",
				Rule:    "exists",
				Message: fmt.Sprintf("unknown category %q", n),
			})
			continue
		}
		rows = append(rows, &types.RestaurantCategory{RestaurantID: restaurantID, CategoryName: n})
	}
	if err := domainagg.NewValidationError(op, missing); err != nil {
		return err
	}
	_, err = a.deps.Links.Create(dbc, rows)
	return err
}

func applyUserDetail(ud *types.UserDetail, in domainagg.UpdateRestaurantInput) bool {
	changed := false
	if in.OwnerFirstName != "" && in.OwnerFirstName != ud.FirstName {
		ud.FirstName = in.OwnerFirstName
		changed = true
	}
	if in.OwnerLastName != "" && in.OwnerLastName != ud.LastName {
		ud.LastName = in.OwnerLastName
		changed = true
	}
	if in.OwnerEmail != "" && in.OwnerEmail != ud.Email {
		ud.Email = in.OwnerEmail
		changed = true
	}
	return changed
}

func applyLocation(loc *types.Location, in domainagg.UpdateRestaurantInput) bool {
	changed := false
	if in.Street != "" && in.Street != loc.Street {
		loc.Street = in.Street
		changed = true
	}
	if in.City != "" && in.City != loc.City {
		loc.City = in.City
		changed = true
	}
	if in.ZipCode != nil && *in.ZipCode != loc.ZipCode {
		loc.ZipCode = *in.ZipCode
		changed = true
	}
	if in.State != "" && in.State != loc.State {
		loc.State = in.State
		changed = true
	}
	return changed
}

func normalizeAddInput(in domainagg.AddRestaurantInput) domainagg.AddRestaurantInput {
	in.OwnerFirstName = strings.TrimSpace(in.OwnerFirstName)
	in.OwnerLastName = strings.TrimSpace(in.OwnerLastName)
	in.OwnerEmail = strings.TrimSpace(in.OwnerEmail)
	in.Street = strings.TrimSpace(in.Street)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.Name = strings.TrimSpace(in.Name)
	in.Categories = uniqueNames(in.Categories)
	return in
}

func normalizeUpdateInput(in domainagg.UpdateRestaurantInput) domainagg.UpdateRestaurantInput {
	in.OwnerFirstName = strings.TrimSpace(in.OwnerFirstName)
	in.OwnerLastName = strings.TrimSpace(in.OwnerLastName)
	in.OwnerEmail = strings.TrimSpace(in.OwnerEmail)
	in.Street = strings.TrimSpace(in.Street)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.Name = strings.TrimSpace(in.Name)
	in.Categories = uniqueNames(in.Categories)
	return in
}

// uniqueNames trims names, drops blanks and keeps the first occurrence of each.
// A nil slice stays nil so "not provided" survives normalization.
func uniqueNames(names []string) []string {
	if names == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

const maxZipCode = 99999

func checkAddInput(in domainagg.AddRestaurantInput) domainagg.ValidationErrors {
	var v domainagg.ValidationErrors
	required := func(field, val string) {
		if val == "" {
			v = append(v, domainagg.FieldError{Field: field, Rule: "required", Message: field + " is required"})
		}
	}
	required("first_name", in.OwnerFirstName)
	required("last_name", in.OwnerLastName)
	required("email", in.OwnerEmail)
	required("street", in.Street)
	required("city", in.City)
	required("state", in.State)
	required("name", in.Name)
	v = append(v, checkZip(&in.ZipCode)...)
	if in.State != "" {
		v = append(v, checkState(in.State)...)
	}
	v = append(v, checkPriceRating(&in.PriceRating)...)
	return v
}

func checkUpdateInput(in domainagg.UpdateRestaurantInput) domainagg.ValidationErrors {
	var v domainagg.ValidationErrors
	if in.RestaurantID == 0 {
		v = append(v, domainagg.FieldError{Field: "id", Rule: "required", Message: "restaurant id is required"})
	}
	v = append(v, checkZip(in.ZipCode)...)
	if in.State != "" {
		v = append(v, checkState(in.State)...)
	}
	v = append(v, checkPriceRating(in.PriceRating)...)
	return v
}

func checkZip(zip *int) domainagg.ValidationErrors {
	if zip == nil || (*zip >= 0 && *zip <= maxZipCode) {
		return nil
	}
	return domainagg.ValidationErrors{{Field: "zip", Rule: "max_digits", Message: "zip must be numeric with at most 5 digits"}}
}

func checkState(state string) domainagg.ValidationErrors {
	if len([]rune(state)) == 2 {
		return nil
	}
	return domainagg.ValidationErrors{{Field: "state", Rule: "len", Message: "state must be exactly 2 characters"}}
}

func checkPriceRating(pr *int) domainagg.ValidationErrors {
	if pr == nil || (*pr >= types.MinPriceRating && *pr <= types.MaxPriceRating) {
		return nil
	}
	return domainagg.ValidationErrors{{
		Field:   "price_rating",
		Rule:    "range",
		Message: fmt.Sprintf("price_rating must be between %d and %d", types.MinPriceRating, types.MaxPriceRating),
	}}
}
