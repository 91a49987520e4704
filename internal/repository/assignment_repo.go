package repository

import (
	"time"

	"go-ops-erp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignmentRepository is the binding store consumed by the authorization
// engine. Every read filters out expired assignments and inactive roles, and
// every write is keyed on (user_id, role_id).
type AssignmentRepository interface {
	Assign(assignment *model.UserRoleAssignment) error
	Revoke(userID uuid.UUID, roleID uint) error
	ListForUser(userID uuid.UUID) ([]model.UserRoleAssignment, error)
	ListActiveRoles(userID uuid.UUID) ([]model.Role, error)
	GetEffectivePermissions(userID uuid.UUID) ([]model.Permission, error)
	BackfillDefaultRole(roleID uint) (int64, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

// Assign upserts the binding; re-assigning an existing role refreshes the
// expiry and provenance instead of erroring.
func (r *assignmentRepo) Assign(assignment *model.UserRoleAssignment) error {
	if assignment.AssignedAt.IsZero() {
		assignment.AssignedAt = time.Now()
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "role_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"assigned_at", "assigned_by", "expires_at"}),
	}).Create(assignment).Error
}

func (r *assignmentRepo) Revoke(userID uuid.UUID, roleID uint) error {
	return r.db.Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&model.UserRoleAssignment{}).Error
}

func (r *assignmentRepo) ListForUser(userID uuid.UUID) ([]model.UserRoleAssignment, error) {
	var assignments []model.UserRoleAssignment
	err := r.db.Preload("Role").Where("user_id = ?", userID).Find(&assignments).Error
	return assignments, err
}

// ListActiveRoles returns the roles behind non-expired assignments to active
// roles, for primary-role resolution.
func (r *assignmentRepo) ListActiveRoles(userID uuid.UUID) ([]model.Role, error) {
	var roles []model.Role
	err := r.db.Model(&model.Role{}).
		Joins("JOIN user_role_assignments ura ON ura.role_id = roles.id").
		Where("ura.user_id = ? AND roles.is_active = ?", userID, true).
		Where("ura.expires_at IS NULL OR ura.expires_at > ?", time.Now()).
		Find(&roles).Error
	return roles, err
}

// GetEffectivePermissions resolves the union of permissions reachable through
// the user's active assignments. A binding that references a missing role or
// permission simply drops out of the join, so data-integrity defects resolve
// to "not granted" rather than an error.
func (r *assignmentRepo) GetEffectivePermissions(userID uuid.UUID) ([]model.Permission, error) {
	var perms []model.Permission
	err := r.db.Model(&model.Permission{}).
		Distinct("permissions.*").
		Joins("JOIN role_permissions rp ON rp.permission_id = permissions.id").
		Joins("JOIN roles ON roles.id = rp.role_id AND roles.is_active = true").
		Joins("JOIN user_role_assignments ura ON ura.role_id = rp.role_id").
		Where("ura.user_id = ?", userID).
		Where("ura.expires_at IS NULL OR ura.expires_at > ?", time.Now()).
		Find(&perms).Error
	return perms, err
}

// BackfillDefaultRole assigns the given role to every user that holds no
// assignment at all. Set-based so racing seeders cannot double-assign.
func (r *assignmentRepo) BackfillDefaultRole(roleID uint) (int64, error) {
	result := r.db.Exec(`
		INSERT INTO user_role_assignments (user_id, role_id, assigned_at)
		SELECT u.id, ?, ?
		FROM users u
		WHERE u.deleted_at IS NULL
		  AND NOT EXISTS (
			SELECT 1 FROM user_role_assignments ura WHERE ura.user_id = u.id
		  )
		ON CONFLICT (user_id, role_id) DO NOTHING`,
		roleID, time.Now())
	return result.RowsAffected, result.Error
}
