package services

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
)

type CategoryRef struct {
	Name string `json:"name" validate:"required"`
}

// AddRestaurantPayload is the create body. Zip is a string so leading zeros and
// non-digits can be rejected explicitly.
type AddRestaurantPayload struct {
	OwnerFirstName string        `json:"ownerFirstName" validate:"required"`
	OwnerLastName  string        `json:"ownerLastName" validate:"required"`
	OwnerEmail     string        `json:"ownerEmail" validate:"required"`
	Street         string        `json:"street" validate:"required"`
	City           string        `json:"city" validate:"required"`
	Zip            string        `json:"zip" validate:"required,number,max=5"`
	State          string        `json:"state" validate:"required,len=2"`
	Name           string        `json:"name" validate:"required"`
	PriceRating    int           `json:"priceRating" validate:"min=1,max=3"`
	Categories     []CategoryRef `json:"categories" validate:"dive"`
}

// UpdateRestaurantPayload is the partial update body. Blank strings and absent numbers
// mean "unchanged". An absent categories list leaves them alone; [] clears them.
type UpdateRestaurantPayload struct {
	OwnerFirstName string        `json:"ownerFirstName"`
	OwnerLastName  string        `json:"ownerLastName"`
	OwnerEmail     string        `json:"ownerEmail"`
	Street         string        `json:"street"`
	City           string        `json:"city"`
	Zip            string        `json:"zip" validate:"omitempty,number,max=5"`
	State          string        `json:"state" validate:"omitempty,len=2"`
	Name           string        `json:"name"`
	PriceRating    *int          `json:"priceRating" validate:"omitempty,min=1,max=3"`
	Categories     []CategoryRef `json:"categories" validate:"omitempty,dive"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func payloadValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// NewAddRestaurantInput trims and validates p, returning the aggregate input or a
// CodeValidation error carrying every failed field.
func NewAddRestaurantInput(p AddRestaurantPayload) (domainagg.AddRestaurantInput, error) {
	const op = "Restaurants.Add"
	p.OwnerFirstName = strings.TrimSpace(p.OwnerFirstName)
	p.OwnerLastName = strings.TrimSpace(p.OwnerLastName)
	p.OwnerEmail = strings.TrimSpace(p.OwnerEmail)
	p.Street = strings.TrimSpace(p.Street)
	p.City = strings.TrimSpace(p.City)
	p.Zip = strings.TrimSpace(p.Zip)
	p.State = strings.TrimSpace(p.State)
	p.Name = strings.TrimSpace(p.Name)
	trimRefs(p.Categories)

	if err := validationError(op, payloadValidator().Struct(p)); err != nil {
		return domainagg.AddRestaurantInput{}, err
	}
	zip, _ := strconv.Atoi(p.Zip)
	return domainagg.AddRestaurantInput{
		OwnerFirstName: p.OwnerFirstName,
		OwnerLastName:  p.OwnerLastName,
		OwnerEmail:     p.OwnerEmail,
		Street:         p.Street,
		City:           p.City,
		ZipCode:        zip,
		State:          p.State,
		Name:           p.Name,
		PriceRating:    p.PriceRating,
		Categories:     refNames(p.Categories),
	}, nil
}

func NewUpdateRestaurantInput(restaurantID uint, p UpdateRestaurantPayload) (domainagg.UpdateRestaurantInput, error) {
	const op = "Restaurants.Update"
	p.OwnerFirstName = strings.TrimSpace(p.OwnerFirstName)
	p.OwnerLastName = strings.TrimSpace(p.OwnerLastName)
	p.OwnerEmail = strings.TrimSpace(p.OwnerEmail)
	p.Street = strings.TrimSpace(p.Street)
	p.City = strings.TrimSpace(p.City)
	p.Zip = strings.TrimSpace(p.Zip)
	p.State = strings.TrimSpace(p.State)
	p.Name = strings.TrimSpace(p.Name)
	trimRefs(p.Categories)

	if err := validationError(op, payloadValidator().Struct(p)); err != nil {
		return domainagg.UpdateRestaurantInput{}, err
	}
	in := domainagg.UpdateRestaurantInput{
		RestaurantID:   restaurantID,
		OwnerFirstName: p.OwnerFirstName,
		OwnerLastName:  p.OwnerLastName,
		OwnerEmail:     p.OwnerEmail,
		Street:         p.Street,
		City:           p.City,
		State:          p.State,
		Name:           p.Name,
		PriceRating:    p.PriceRating,
		Categories:     refNames(p.Categories),
	}
	if p.Zip != "" {
		zip, _ := strconv.Atoi(p.Zip)
		in.ZipCode = &zip
	}
	return in, nil
}

func trimRefs(refs []CategoryRef) {
	for i := range refs {
		refs[i].Name = strings.TrimSpace(refs[i].Name)
	}
}

// refNames keeps nil as nil so an omitted list stays distinguishable from [].
func refNames(refs []CategoryRef) []string {
	if refs == nil {
		return nil
	}
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}

var ruleMessages = map[string]string{
	"required": "%s is required",
	"number":   "%s must contain only digits",
	"len":      "%s must be exactly %s characters",
}

func validationError(op string, err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domainagg.NewError(domainagg.CodeValidation, op, err.Error(), err)
	}
	out := make(domainagg.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		out = append(out, domainagg.FieldError{
			Field:   field,
			Rule:    fe.Tag(),
			Message: ruleMessage(field, fe),
		})
	}
	return domainagg.NewValidationError(op, out)
}

// fieldPath drops the struct name from a validator namespace ("AddRestaurantPayload.zip" -> "zip").
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func ruleMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		if field == "zip" {
			return "zip must have at most " + fe.Param() + " digits"
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	}
	if tmpl, ok := ruleMessages[fe.Tag()]; ok {
		if strings.Count(tmpl, "%s") == 2 {
			return fmt.Sprintf(tmpl, field, fe.Param())
		}
		return fmt.Sprintf(tmpl, field)
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}
