package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	types "github.com/crumbs/restaurant-service/internal/domain"
	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
)

func parseID(c *gin.Context, param string) (uint, error) {
	raw := strings.TrimSpace(c.Param(param))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domainagg.NewValidationError("HTTP.ParseID", domainagg.ValidationErrors{{
			Field:   param,
			Rule:    "id",
			Message: fmt.Sprintf("%s must be a positive integer", param),
		}})
	}
	return uint(id), nil
}

// parsePage reads page, size, sort and dir. Page is zero-based; dir is "asc" or "desc".
func parsePage(c *gin.Context) (types.PageRequest, error) {
	var (
		p    types.PageRequest
		errs domainagg.ValidationErrors
	)
	readInt := func(key string, dst *int) {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs = append(errs, domainagg.FieldError{
				Field:   key,
				Rule:    "int",
				Message: fmt.Sprintf("%s must be a non-negative integer", key),
			})
			return
		}
		*dst = n
	}
	readInt("page", &p.Page)
	readInt("size", &p.Size)
	p.Sort = c.Query("sort")

	switch strings.ToLower(strings.TrimSpace(c.Query("dir"))) {
	case "", "asc":
	case "desc":
		p.Desc = true
	default:
		errs = append(errs, domainagg.FieldError{Field: "dir", Rule: "oneof", Message: "dir must be asc or desc"})
	}
	if err := domainagg.NewValidationError("HTTP.ParsePage", errs); err != nil {
		return types.PageRequest{}, err
	}
	return p, nil
}

func pageBody[T any](key string, page types.Page[T]) gin.H {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	return gin.H{
		key:           items,
		"total":       page.Total,
		"page":        page.Page,
		"size":        page.Size,
		"total_pages": page.TotalPages(),
	}
}
