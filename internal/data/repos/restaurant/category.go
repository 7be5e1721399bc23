package restaurant

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/crumbs/restaurant-service/internal/domain"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

type CategoryRepo interface {
	// Create inserts categories, skipping names that already exist.
	Create(dbc dbctx.Context, rows []*types.Category) ([]*types.Category, error)
	List(dbc dbctx.Context) ([]*types.Category, error)
	GetByNames(dbc dbctx.Context, names []string) ([]*types.Category, error)
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return &categoryRepo{db: db, log: baseLog.With("repo", "CategoryRepo")}
}

func (r *categoryRepo) Create(dbc dbctx.Context, rows []*types.Category) ([]*types.Category, error) {
	if len(rows) == 0 {
		return []*types.Category{}, nil
	}
	if err := dbc.DB(r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *categoryRepo) List(dbc dbctx.Context) ([]*types.Category, error) {
	var out []*types.Category
	if err := dbc.DB(r.db).Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *categoryRepo) GetByNames(dbc dbctx.Context, names []string) ([]*types.Category, error) {
	var out []*types.Category
	clean := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			clean = append(clean, n)
		}
	}
	if len(clean) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).Where("name IN ?", clean).Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
