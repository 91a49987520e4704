package service

import (
	"fmt"

	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrimaryRoleUnknown is the sentinel label for a user with zero active roles.
// It is distinct from the viewer floor applied when a user holds only roles
// outside the known hierarchy.
const PrimaryRoleUnknown = "unknown"

// SeedResult reports what the bootstrap established.
type SeedResult struct {
	Roles           []model.Role `json:"roles"`
	PermissionCount int          `json:"permission_count"`
	BackfilledUsers int64        `json:"backfilled_users"`
}

// RBACService is the authorization engine plus the out-of-band bootstrap.
// Every check re-reads the store: nothing is cached across requests, so role
// and grant edits take effect on the next check.
type RBACService interface {
	Seed() (*SeedResult, error)
	HasPermission(userID uuid.UUID, action model.Action, resource model.Resource) (bool, error)
	EffectivePermissions(userID uuid.UUID) (map[model.PermissionKey]struct{}, error)
	UserRoles(userID uuid.UUID) ([]model.Role, error)
	PrimaryRole(userID uuid.UUID) (string, error)
}

type rbacService struct {
	db          *gorm.DB
	assignments repository.AssignmentRepository
}

func NewRBACService(db *gorm.DB, assignments repository.AssignmentRepository) RBACService {
	return &rbacService{db: db, assignments: assignments}
}

// Seed idempotently establishes the permission catalog, the five system
// roles and their grant sets, and backfills the default role for users with
// no assignment. The whole operation runs in one transaction: any failure
// aborts with nothing applied.
func (s *rbacService) Seed() (*SeedResult, error) {
	var result SeedResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		permRepo := repository.NewPermissionRepo(tx)
		roleRepo := repository.NewRoleRepo(tx)
		assignRepo := repository.NewAssignmentRepo(tx)

		catalog := model.Catalog()
		if err := permRepo.UpsertCatalog(catalog); err != nil {
			return fmt.Errorf("seed permissions: %w", err)
		}

		// Conflicting rows keep their original ids, so re-read to map keys to ids.
		stored, err := permRepo.FindAll()
		if err != nil {
			return fmt.Errorf("load permissions: %w", err)
		}
		permIDs := make(map[model.PermissionKey]uint, len(stored))
		for _, p := range stored {
			permIDs[p.Key()] = p.ID
		}

		if err := roleRepo.UpsertSystemRoles(model.SystemRoles); err != nil {
			return fmt.Errorf("seed roles: %w", err)
		}

		for _, sysRole := range model.SystemRoles {
			role, err := roleRepo.FindByName(sysRole.Name)
			if err != nil {
				return fmt.Errorf("load role %s: %w", sysRole.Name, err)
			}

			keys := model.SystemRoleGrants[role.Name]
			ids := make([]uint, 0, len(keys))
			for _, key := range keys {
				id, ok := permIDs[key]
				if !ok {
					return fmt.Errorf("grant list for %s references unknown permission %s %s", role.Name, key.Action, key.Resource)
				}
				ids = append(ids, id)
			}
			if err := roleRepo.GrantPermissions(role.ID, ids); err != nil {
				return fmt.Errorf("grant %s permissions: %w", role.Name, err)
			}
			result.Roles = append(result.Roles, *role)
		}

		defaultRole, err := roleRepo.FindByName(model.DefaultRoleName)
		if err != nil {
			return fmt.Errorf("load default role: %w", err)
		}
		backfilled, err := assignRepo.BackfillDefaultRole(defaultRole.ID)
		if err != nil {
			return fmt.Errorf("backfill default role: %w", err)
		}

		result.PermissionCount = len(catalog)
		result.BackfilledUsers = backfilled
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// HasPermission is a flat membership test against the effective permission
// set. MANAGE is not expanded at query time; grant lists enumerate every
// action explicitly. A store error is returned so callers deny, never grant.
func (s *rbacService) HasPermission(userID uuid.UUID, action model.Action, resource model.Resource) (bool, error) {
	perms, err := s.EffectivePermissions(userID)
	if err != nil {
		return false, err
	}
	_, ok := perms[model.PermissionKey{Action: action, Resource: resource}]
	return ok, nil
}

// EffectivePermissions resolves the union of permissions across the user's
// active, non-expired role assignments. No assignments is an empty set, not
// an error.
func (s *rbacService) EffectivePermissions(userID uuid.UUID) (map[model.PermissionKey]struct{}, error) {
	perms, err := s.assignments.GetEffectivePermissions(userID)
	if err != nil {
		return nil, err
	}
	set := make(map[model.PermissionKey]struct{}, len(perms))
	for _, p := range perms {
		set[p.Key()] = struct{}{}
	}
	return set, nil
}

func (s *rbacService) UserRoles(userID uuid.UUID) ([]model.Role, error) {
	return s.assignments.ListActiveRoles(userID)
}

// PrimaryRole computes the display label for the user's current roles.
func (s *rbacService) PrimaryRole(userID uuid.UUID) (string, error) {
	roles, err := s.assignments.ListActiveRoles(userID)
	if err != nil {
		return "", err
	}
	return ResolvePrimaryRole(roles), nil
}

var primaryRoleRank = map[string]int{
	model.RoleSuperAdmin: 4,
	model.RoleAdmin:      3,
	model.RoleOperator:   2,
	model.RoleViewer:     1,
}

// ResolvePrimaryRole picks a single display label from the user's active
// roles using the fixed precedence super_admin > admin > operator > viewer.
// Roles outside the hierarchy (manager, custom roles) are ignored; if only
// such roles are held the label floors at viewer. Zero roles resolves to the
// unknown sentinel. Display only: never use this for access decisions.
func ResolvePrimaryRole(roles []model.Role) string {
	if len(roles) == 0 {
		return PrimaryRoleUnknown
	}
	best := 0
	label := model.RoleViewer
	for _, role := range roles {
		if role.Name == model.RoleSuperAdmin {
			return model.RoleSuperAdmin
		}
		if rank := primaryRoleRank[role.Name]; rank > best {
			best = rank
			label = role.Name
		}
	}
	return label
}
