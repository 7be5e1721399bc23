package restaurant

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/crumbs/restaurant-service/internal/domain"
	dm "github.com/crumbs/restaurant-service/internal/domain/restaurant"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

type MenuItemRepo interface {
	Create(dbc dbctx.Context, rows []*types.MenuItem) ([]*types.MenuItem, error)
	GetByID(dbc dbctx.Context, id uint) (*types.MenuItem, error)
	List(dbc dbctx.Context, p types.PageRequest) (dm.Page[*types.MenuItem], error)
	ListByRestaurantID(dbc dbctx.Context, restaurantID uint, p types.PageRequest) (dm.Page[*types.MenuItem], error)
	SearchByName(dbc dbctx.Context, q string, p types.PageRequest) (dm.Page[*types.MenuItem], error)
	CountByRestaurantID(dbc dbctx.Context, restaurantID uint) (int64, error)
	DeleteByRestaurantID(dbc dbctx.Context, restaurantID uint) (int64, error)
}

var menuItemSortColumns = map[string]string{
	"id":    "id",
	"name":  "name",
	"price": "price",
}

type menuItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMenuItemRepo(db *gorm.DB, baseLog *logger.Logger) MenuItemRepo {
	return &menuItemRepo{db: db, log: baseLog.With("repo", "MenuItemRepo")}
}

func (r *menuItemRepo) Create(dbc dbctx.Context, rows []*types.MenuItem) ([]*types.MenuItem, error) {
	if len(rows) == 0 {
		return []*types.MenuItem{}, nil
	}
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *menuItemRepo) GetByID(dbc dbctx.Context, id uint) (*types.MenuItem, error) {
	if id == 0 {
		return nil, nil
	}
	var rows []*types.MenuItem
	if err := dbc.DB(r.db).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *menuItemRepo) List(dbc dbctx.Context, p types.PageRequest) (dm.Page[*types.MenuItem], error) {
	base := dbc.DB(r.db).Model(&types.MenuItem{})
	return paginate[types.MenuItem](base, p, menuItemSortColumns, nil)
}

func (r *menuItemRepo) ListByRestaurantID(dbc dbctx.Context, restaurantID uint, p types.PageRequest) (dm.Page[*types.MenuItem], error) {
	base := dbc.DB(r.db).Model(&types.MenuItem{}).Where("restaurant_id = ?", restaurantID)
	return paginate[types.MenuItem](base, p, menuItemSortColumns, nil)
}

// SearchByName matches menu items whose name contains q, ignoring case.
func (r *menuItemRepo) SearchByName(dbc dbctx.Context, q string, p types.PageRequest) (dm.Page[*types.MenuItem], error) {
	base := whereNameContains(dbc.DB(r.db).Model(&types.MenuItem{}), "name", q)
	return paginate[types.MenuItem](base, p, menuItemSortColumns, nil)
}

func (r *menuItemRepo) CountByRestaurantID(dbc dbctx.Context, restaurantID uint) (int64, error) {
	var n int64
	err := dbc.DB(r.db).Model(&types.MenuItem{}).Where("restaurant_id = ?", restaurantID).Count(&n).Error
	return n, err
}

func (r *menuItemRepo) DeleteByRestaurantID(dbc dbctx.Context, restaurantID uint) (int64, error) {
	res := dbc.DB(r.db).Where("restaurant_id = ?", restaurantID).Delete(&types.MenuItem{})
	return res.RowsAffected, res.Error
}
