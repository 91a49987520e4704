package repository

import (
	"go-ops-erp/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PermissionRepository interface {
	FindAll() ([]model.Permission, error)
	FindByKey(action model.Action, resource model.Resource) (*model.Permission, error)
	UpsertCatalog(perms []model.Permission) error
}

type permissionRepo struct {
	db *gorm.DB
}

func NewPermissionRepo(db *gorm.DB) PermissionRepository {
	return &permissionRepo{db}
}

func (r *permissionRepo) FindAll() ([]model.Permission, error) {
	var perms []model.Permission
	if err := r.db.Find(&perms).Error; err != nil {
		return nil, err
	}
	return perms, nil
}

func (r *permissionRepo) FindByKey(action model.Action, resource model.Resource) (*model.Permission, error) {
	var perm model.Permission
	if err := r.db.Where("action = ? AND resource = ?", action, resource).First(&perm).Error; err != nil {
		return nil, err
	}
	return &perm, nil
}

// UpsertCatalog writes the catalog keyed on (action, resource). Re-running or
// racing seeders cannot produce duplicate rows.
func (r *permissionRepo) UpsertCatalog(perms []model.Permission) error {
	if len(perms) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "action"}, {Name: "resource"}},
		DoNothing: true,
	}).Create(&perms).Error
}
