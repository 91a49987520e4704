package repository

import (
	"go-ops-erp/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepository interface {
	FindAll() ([]model.Role, error)
	FindByID(id uint) (*model.Role, error)
	FindByName(name string) (*model.Role, error)
	Create(role *model.Role) error
	UpsertSystemRoles(roles []model.Role) error
	GrantPermissions(roleID uint, permissionIDs []uint) error
	ReplacePermissions(role *model.Role, perms []model.Permission) error
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) FindAll() ([]model.Role, error) {
	var roles []model.Role
	err := r.db.Preload("Permissions").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) FindByID(id uint) (*model.Role, error) {
	var role model.Role
	err := r.db.Preload("Permissions").First(&role, id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) FindByName(name string) (*model.Role, error) {
	var role model.Role
	err := r.db.Preload("Permissions").Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) Create(role *model.Role) error {
	return r.db.Create(role).Error
}

// UpsertSystemRoles writes the built-in roles keyed on name. Existing rows are
// left untouched so operator edits to display names survive reseeding.
func (r *roleRepo) UpsertSystemRoles(roles []model.Role) error {
	if len(roles) == 0 {
		return nil
	}
	// Create writes generated ids back into the slice, so insert a copy and
	// keep the caller's role table pristine for later reseeds.
	rows := make([]model.Role, len(roles))
	copy(rows, roles)
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows).Error
}

// GrantPermissions adds role-permission bindings without revoking existing
// ones, keyed on (role_id, permission_id).
func (r *roleRepo) GrantPermissions(roleID uint, permissionIDs []uint) error {
	if len(permissionIDs) == 0 {
		return nil
	}
	bindings := make([]model.RolePermission, 0, len(permissionIDs))
	for _, pid := range permissionIDs {
		bindings = append(bindings, model.RolePermission{RoleID: roleID, PermissionID: pid})
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role_id"}, {Name: "permission_id"}},
		DoNothing: true,
	}).Create(&bindings).Error
}

// ReplacePermissions swaps a role's full permission set. Used by role editing,
// not by the seeder.
func (r *roleRepo) ReplacePermissions(role *model.Role, perms []model.Permission) error {
	return r.db.Model(role).Association("Permissions").Replace(perms)
}
