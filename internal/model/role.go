package model

// Role is a named bundle of permissions assignable to users. System roles are
// established by the seeder and are never deleted; custom roles are managed by
// administrative flows.
type Role struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"` // stable machine key, e.g. "super_admin"
	DisplayName string       `gorm:"type:varchar(100)" json:"display_name"`
	Description string       `gorm:"type:text" json:"description"`
	IsSystem    bool         `gorm:"default:false" json:"is_system"`
	IsActive    bool         `gorm:"default:true" json:"is_active"`
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions,omitempty"`
}

// System role names.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleOperator   = "operator"
	RoleViewer     = "viewer"
)

// DefaultRoleName is assigned to users that hold no role at all.
const DefaultRoleName = RoleOperator

// SystemRoles defines the five built-in roles.
var SystemRoles = []Role{
	{
		Name:        RoleSuperAdmin,
		DisplayName: "Super Administrator",
		Description: "Full system access, including role management",
		IsSystem:    true,
		IsActive:    true,
	},
	{
		Name:        RoleAdmin,
		DisplayName: "Administrator",
		Description: "Full access except role administration",
		IsSystem:    true,
		IsActive:    true,
	},
	{
		Name:        RoleManager,
		DisplayName: "Manager",
		Description: "Manages clients, equipment and quotations",
		IsSystem:    true,
		IsActive:    true,
	},
	{
		Name:        RoleOperator,
		DisplayName: "Operator",
		Description: "Works service and purchase orders",
		IsSystem:    true,
		IsActive:    true,
	},
	{
		Name:        RoleViewer,
		DisplayName: "Viewer",
		Description: "Read-only access to operational data",
		IsSystem:    true,
		IsActive:    true,
	},
}

// SystemRoleGrants maps each system role to its granted permission keys. The
// tables are data, not predicates, so the role-to-permission mapping can be
// audited and tested without running the seeder.
//
// admin deliberately lacks both MANAGE and DELETE on ROLE: role administration
// is reserved for super_admin.
var SystemRoleGrants = map[string][]PermissionKey{
	RoleSuperAdmin: allKeys(),
	RoleAdmin: without(allKeys(),
		PermissionKey{ActionManage, ResourceRole},
		PermissionKey{ActionDelete, ResourceRole},
	),
	RoleManager: concatKeys(
		keysOn(ResourceUser, ActionRead, ActionCreate, ActionUpdate),
		allOn(ResourceDashboard, ResourceClient, ResourceEquipment, ResourceQuotation),
		keysOn(ResourceCompany, ActionRead),
	),
	RoleOperator: concatKeys(
		allOn(ResourceServiceOrder, ResourcePurchaseOrder, ResourceEquipment, ResourceDashboard),
		keysOn(ResourceClient, ActionRead),
		keysOn(ResourceQuotation, ActionRead, ActionCreate),
	),
	RoleViewer: readOn(
		ResourceDashboard,
		ResourceClient,
		ResourceEquipment,
		ResourceQuotation,
		ResourceServiceOrder,
		ResourcePurchaseOrder,
	),
}

func allKeys() []PermissionKey {
	catalog := Catalog()
	keys := make([]PermissionKey, 0, len(catalog))
	for _, p := range catalog {
		keys = append(keys, p.Key())
	}
	return keys
}

func without(keys []PermissionKey, drop ...PermissionKey) []PermissionKey {
	dropped := make(map[PermissionKey]struct{}, len(drop))
	for _, k := range drop {
		dropped[k] = struct{}{}
	}
	kept := make([]PermissionKey, 0, len(keys))
	for _, k := range keys {
		if _, ok := dropped[k]; !ok {
			kept = append(kept, k)
		}
	}
	return kept
}

func keysOn(resource Resource, actions ...Action) []PermissionKey {
	keys := make([]PermissionKey, 0, len(actions))
	for _, a := range actions {
		keys = append(keys, PermissionKey{Action: a, Resource: resource})
	}
	return keys
}

func allOn(resources ...Resource) []PermissionKey {
	var keys []PermissionKey
	for _, r := range resources {
		keys = append(keys, keysOn(r, Actions...)...)
	}
	return keys
}

func readOn(resources ...Resource) []PermissionKey {
	var keys []PermissionKey
	for _, r := range resources {
		keys = append(keys, PermissionKey{Action: ActionRead, Resource: r})
	}
	return keys
}

func concatKeys(groups ...[]PermissionKey) []PermissionKey {
	var keys []PermissionKey
	for _, g := range groups {
		keys = append(keys, g...)
	}
	return keys
}
