package aggregates

import (
	"strings"

	"github.com/crumbs/restaurant-service/internal/data/repos"
	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
)

// DuplicateChecker reports which business-unique fields already exist in the store.
// It only reads; callers decide whether a hit aborts the write.
type DuplicateChecker struct {
	users     repos.UserDetailRepo
	locations repos.LocationRepo
}

func NewDuplicateChecker(users repos.UserDetailRepo, locations repos.LocationRepo) *DuplicateChecker {
	return &DuplicateChecker{users: users, locations: locations}
}

// Check looks up email among user details and street among locations, both by exact match.
// Blank arguments are not checked.
func (c *DuplicateChecker) Check(dbc dbctx.Context, email, street string) ([]domainagg.DuplicateField, error) {
	var found []domainagg.DuplicateField
	if email = strings.TrimSpace(email); email != "" {
		u, err := c.users.FindByEmail(dbc, email)
		if err != nil {
			return nil, err
		}
		if u != nil {
			found = append(found, domainagg.DuplicateEmail)
		}
	}
	if street = strings.TrimSpace(street); street != "" {
		loc, err := c.locations.FindByStreet(dbc, street)
		if err != nil {
			return nil, err
		}
		if loc != nil {
			found = append(found, domainagg.DuplicateStreet)
		}
	}
	return found, nil
}

// Require is Check turned into a CodeDuplicateField error naming every hit.
func (c *DuplicateChecker) Require(dbc dbctx.Context, op, email, street string) error {
	found, err := c.Check(dbc, email, street)
	if err != nil {
		return err
	}
	return domainagg.NewDuplicateFieldError(op, found)
}
