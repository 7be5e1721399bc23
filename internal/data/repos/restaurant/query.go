package restaurant

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/crumbs/restaurant-service/internal/domain"
	dm "github.com/crumbs/restaurant-service/internal/domain/restaurant"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern escapes q into a LIKE pattern matching it anywhere.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(q)) + "%"
}

// whereNameContains matches column against q ignoring case. Both sides are
// folded by the database; the Go-folded term covers dialects whose LOWER only
// folds ASCII.
func whereNameContains(t *gorm.DB, column, q string) *gorm.DB {
	pattern := containsPattern(q)
	return t.Where(
		fmt.Sprintf(`(LOWER(%[1]s) LIKE LOWER(?) ESCAPE '\' OR LOWER(%[1]s) LIKE ? ESCAPE '\')`, column),
		pattern, strings.ToLower(pattern),
	)
}

// orderBy maps a public sort key onto a whitelisted column, falling back to id.
func orderBy(p types.PageRequest, columns map[string]string) clause.OrderByColumn {
	col, ok := columns[p.Sort]
	if !ok {
		col = "id"
	}
	return clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: p.Desc}
}

// forUpdate adds row locking where the dialect supports it.
func forUpdate(t *gorm.DB) *gorm.DB {
	if t.Dialector != nil && t.Dialector.Name() == "postgres" {
		return t.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return t
}

func paginate[T any](base *gorm.DB, p types.PageRequest, columns map[string]string, scope func(*gorm.DB) *gorm.DB) (dm.Page[*T], error) {
	p = p.Normalize()
	base = base.Session(&gorm.Session{})
	out := dm.Page[*T]{Items: []*T{}, Page: p.Page, Size: p.Size}
	if err := base.Count(&out.Total).Error; err != nil {
		return out, err
	}
	if out.Total == 0 {
		return out, nil
	}
	q := base.Order(orderBy(p, columns)).Limit(p.Size).Offset(p.Offset())
	if scope != nil {
		q = scope(q)
	}
	if err := q.Find(&out.Items).Error; err != nil {
		return out, err
	}
	return out, nil
}
