package restaurant

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/crumbs/restaurant-service/internal/domain"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

type RestaurantOwnerRepo interface {
	Create(dbc dbctx.Context, row *types.RestaurantOwner) error
	GetByID(dbc dbctx.Context, id uint) (*types.RestaurantOwner, error)
	DeleteByID(dbc dbctx.Context, id uint) error
}

type restaurantOwnerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRestaurantOwnerRepo(db *gorm.DB, baseLog *logger.Logger) RestaurantOwnerRepo {
	return &restaurantOwnerRepo{db: db, log: baseLog.With("repo", "RestaurantOwnerRepo")}
}

// Create inserts the owner row only; the referenced user detail must already exist.
func (r *restaurantOwnerRepo) Create(dbc dbctx.Context, row *types.RestaurantOwner) error {
	if row.UserDetailID == 0 && row.UserDetail.ID != 0 {
		row.UserDetailID = row.UserDetail.ID
	}
	return dbc.DB(r.db).Omit(clause.Associations).Create(row).Error
}

func (r *restaurantOwnerRepo) GetByID(dbc dbctx.Context, id uint) (*types.RestaurantOwner, error) {
	if id == 0 {
		return nil, nil
	}
	var rows []*types.RestaurantOwner
	if err := dbc.DB(r.db).Preload("UserDetail").Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *restaurantOwnerRepo) DeleteByID(dbc dbctx.Context, id uint) error {
	return dbc.DB(r.db).Delete(&types.RestaurantOwner{}, id).Error
}
