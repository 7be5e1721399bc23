package restaurant

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/crumbs/restaurant-service/internal/domain"
	dm "github.com/crumbs/restaurant-service/internal/domain/restaurant"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

type RestaurantRepo interface {
	Create(dbc dbctx.Context, row *types.Restaurant) error
	Save(dbc dbctx.Context, row *types.Restaurant) error

	// GetByID loads the full aggregate (location, owner with user detail, categories).
	GetByID(dbc dbctx.Context, id uint) (*types.Restaurant, error)
	// LockByID is GetByID that also takes a row lock for the rest of the transaction.
	LockByID(dbc dbctx.Context, id uint) (*types.Restaurant, error)

	List(dbc dbctx.Context, p types.PageRequest) (dm.Page[*types.Restaurant], error)
	ListByOwnerID(dbc dbctx.Context, ownerID uint) ([]*types.Restaurant, error)
	SearchByName(dbc dbctx.Context, q string, p types.PageRequest) (dm.Page[*types.Restaurant], error)
	SearchByMenuItemName(dbc dbctx.Context, q string, p types.PageRequest) (dm.Page[*types.Restaurant], error)

	DeleteByID(dbc dbctx.Context, id uint) error
}

var restaurantSortColumns = map[string]string{
	"id":           "id",
	"name":         "name",
	"price_rating": "price_rating",
	"rating":       "rating",
	"created_at":   "created_at",
}

type restaurantRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRestaurantRepo(db *gorm.DB, baseLog *logger.Logger) RestaurantRepo {
	return &restaurantRepo{db: db, log: baseLog.With("repo", "RestaurantRepo")}
}

func withAggregate(t *gorm.DB) *gorm.DB {
	return t.
		Preload("Location").
		Preload("Owner").
		Preload("Owner.UserDetail").
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("category_name") }).
		Preload("Categories.Category")
}

// Create inserts the restaurant row only; location, owner and category links are written by their own repos.
func (r *restaurantRepo) Create(dbc dbctx.Context, row *types.Restaurant) error {
	return dbc.DB(r.db).Omit(clause.Associations).Create(row).Error
}

func (r *restaurantRepo) Save(dbc dbctx.Context, row *types.Restaurant) error {
	return dbc.DB(r.db).Omit(clause.Associations).Save(row).Error
}

func (r *restaurantRepo) GetByID(dbc dbctx.Context, id uint) (*types.Restaurant, error) {
	return r.get(dbc.DB(r.db), id)
}

func (r *restaurantRepo) LockByID(dbc dbctx.Context, id uint) (*types.Restaurant, error) {
	return r.get(forUpdate(dbc.DB(r.db)), id)
}

func (r *restaurantRepo) get(t *gorm.DB, id uint) (*types.Restaurant, error) {
	if id == 0 {
		return nil, nil
	}
	var rows []*types.Restaurant
	if err := withAggregate(t).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *restaurantRepo) List(dbc dbctx.Context, p types.PageRequest) (dm.Page[*types.Restaurant], error) {
	base := dbc.DB(r.db).Model(&types.Restaurant{})
	return paginate[types.Restaurant](base, p, restaurantSortColumns, withAggregate)
}

func (r *restaurantRepo) ListByOwnerID(dbc dbctx.Context, ownerID uint) ([]*types.Restaurant, error) {
	var out []*types.Restaurant
	if ownerID == 0 {
		return out, nil
	}
	if err := withAggregate(dbc.DB(r.db)).
		Where("restaurant_owner_id = ?", ownerID).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByName matches restaurants whose name contains q, ignoring case.
func (r *restaurantRepo) SearchByName(dbc dbctx.Context, q string, p types.PageRequest) (dm.Page[*types.Restaurant], error) {
	base := whereNameContains(dbc.DB(r.db).Model(&types.Restaurant{}), "name", q)
	return paginate[types.Restaurant](base, p, restaurantSortColumns, withAggregate)
}

// SearchByMenuItemName returns each restaurant serving at least one menu item whose name contains q.
func (r *restaurantRepo) SearchByMenuItemName(dbc dbctx.Context, q string, p types.PageRequest) (dm.Page[*types.Restaurant], error) {
	t := dbc.DB(r.db)
	sub := whereNameContains(t.Session(&gorm.Session{NewDB: true}).
		Model(&types.MenuItem{}).
		Select("restaurant_id"), "name", q)
	base := t.Model(&types.Restaurant{}).Where("id IN (?)", sub)
	return paginate[types.Restaurant](base, p, restaurantSortColumns, withAggregate)
}

func (r *restaurantRepo) DeleteByID(dbc dbctx.Context, id uint) error {
	return dbc.DB(r.db).Delete(&types.Restaurant{}, id).Error
}
