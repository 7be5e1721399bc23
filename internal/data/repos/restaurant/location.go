package restaurant

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/crumbs/restaurant-service/internal/domain"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

type LocationRepo interface {
	Create(dbc dbctx.Context, row *types.Location) error
	GetByID(dbc dbctx.Context, id uint) (*types.Location, error)
	FindByStreet(dbc dbctx.Context, street string) (*types.Location, error)
	Save(dbc dbctx.Context, row *types.Location) error
	DeleteByID(dbc dbctx.Context, id uint) error
}

type locationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLocationRepo(db *gorm.DB, baseLog *logger.Logger) LocationRepo {
	return &locationRepo{db: db, log: baseLog.With("repo", "LocationRepo")}
}

func (r *locationRepo) Create(dbc dbctx.Context, row *types.Location) error {
	return dbc.DB(r.db).Omit(clause.Associations).Create(row).Error
}

func (r *locationRepo) GetByID(dbc dbctx.Context, id uint) (*types.Location, error) {
	if id == 0 {
		return nil, nil
	}
	var rows []*types.Location
	if err := dbc.DB(r.db).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// FindByStreet returns the first location with exactly this street, or nil.
func (r *locationRepo) FindByStreet(dbc dbctx.Context, street string) (*types.Location, error) {
	street = strings.TrimSpace(street)
	if street == "" {
		return nil, nil
	}
	var rows []*types.Location
	if err := dbc.DB(r.db).Where("street = ?", street).Order("id").Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *locationRepo) Save(dbc dbctx.Context, row *types.Location) error {
	return dbc.DB(r.db).Omit(clause.Associations).Save(row).Error
}

func (r *locationRepo) DeleteByID(dbc dbctx.Context, id uint) error {
	return dbc.DB(r.db).Delete(&types.Location{}, id).Error
}
