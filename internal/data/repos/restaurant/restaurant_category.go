package restaurant

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/crumbs/restaurant-service/internal/domain"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

type RestaurantCategoryRepo interface {
	Create(dbc dbctx.Context, rows []*types.RestaurantCategory) ([]*types.RestaurantCategory, error)
	ListByRestaurantID(dbc dbctx.Context, restaurantID uint) ([]*types.RestaurantCategory, error)
	// DeleteByRestaurantID removes every association of the restaurant and reports how many went.
	DeleteByRestaurantID(dbc dbctx.Context, restaurantID uint) (int64, error)
}

type restaurantCategoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRestaurantCategoryRepo(db *gorm.DB, baseLog *logger.Logger) RestaurantCategoryRepo {
	return &restaurantCategoryRepo{db: db, log: baseLog.With("repo", "RestaurantCategoryRepo")}
}

func (r *restaurantCategoryRepo) Create(dbc dbctx.Context, rows []*types.RestaurantCategory) ([]*types.RestaurantCategory, error) {
	if len(rows) == 0 {
		return []*types.RestaurantCategory{}, nil
	}
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *restaurantCategoryRepo) ListByRestaurantID(dbc dbctx.Context, restaurantID uint) ([]*types.RestaurantCategory, error) {
	var out []*types.RestaurantCategory
	if restaurantID == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Preload("Category").
		Where("restaurant_id = ?", restaurantID).
		Order("category_name").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restaurantCategoryRepo) DeleteByRestaurantID(dbc dbctx.Context, restaurantID uint) (int64, error) {
	res := dbc.DB(r.db).Where("restaurant_id = ?", restaurantID).Delete(&types.RestaurantCategory{})
	return res.RowsAffected, res.Error
}
