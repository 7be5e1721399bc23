package restaurant

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/crumbs/restaurant-service/internal/domain"
	"github.com/crumbs/restaurant-service/internal/pkg/dbctx"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
)

type UserDetailRepo interface {
	Create(dbc dbctx.Context, row *types.UserDetail) error
	GetByID(dbc dbctx.Context, id uint) (*types.UserDetail, error)
	FindByEmail(dbc dbctx.Context, email string) (*types.UserDetail, error)
	Save(dbc dbctx.Context, row *types.UserDetail) error
	DeleteByID(dbc dbctx.Context, id uint) error
}

type userDetailRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserDetailRepo(db *gorm.DB, baseLog *logger.Logger) UserDetailRepo {
	return &userDetailRepo{db: db, log: baseLog.With("repo", "UserDetailRepo")}
}

func (r *userDetailRepo) Create(dbc dbctx.Context, row *types.UserDetail) error {
	return dbc.DB(r.db).Omit(clause.Associations).Create(row).Error
}

func (r *userDetailRepo) GetByID(dbc dbctx.Context, id uint) (*types.UserDetail, error) {
	if id == 0 {
		return nil, nil
	}
	var rows []*types.UserDetail
	if err := dbc.DB(r.db).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// FindByEmail returns the first user detail with exactly this email, or nil.
func (r *userDetailRepo) FindByEmail(dbc dbctx.Context, email string) (*types.UserDetail, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	var rows []*types.UserDetail
	if err := dbc.DB(r.db).Where("email = ?", email).Order("id").Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *userDetailRepo) Save(dbc dbctx.Context, row *types.UserDetail) error {
	return dbc.DB(r.db).Omit(clause.Associations).Save(row).Error
}

func (r *userDetailRepo) DeleteByID(dbc dbctx.Context, id uint) error {
	return dbc.DB(r.db).Delete(&types.UserDetail{}, id).Error
}
