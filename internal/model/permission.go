package model

import "fmt"

// Action is the verb component of a permission.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionRead   Action = "READ"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionManage Action = "MANAGE"
)

// Resource is the noun component of a permission.
type Resource string

const (
	ResourceUser          Resource = "USER"
	ResourceRole          Resource = "ROLE"
	ResourcePermission    Resource = "PERMISSION"
	ResourceClient        Resource = "CLIENT"
	ResourceEquipment     Resource = "EQUIPMENT"
	ResourceQuotation     Resource = "QUOTATION"
	ResourceServiceOrder  Resource = "SERVICE_ORDER"
	ResourcePurchaseOrder Resource = "PURCHASE_ORDER"
	ResourceCompany       Resource = "COMPANY"
	ResourceDashboard     Resource = "DASHBOARD"
	ResourceAdmin         Resource = "ADMIN"
)

// Actions and Resources enumerate the closed taxonomy. The catalog is the
// cross product of the two; callers must not fabricate pairs outside it.
var Actions = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionManage}

var Resources = []Resource{
	ResourceUser,
	ResourceRole,
	ResourcePermission,
	ResourceClient,
	ResourceEquipment,
	ResourceQuotation,
	ResourceServiceOrder,
	ResourcePurchaseOrder,
	ResourceCompany,
	ResourceDashboard,
	ResourceAdmin,
}

// ParseAction validates an action string at the boundary.
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// ParseResource validates a resource string at the boundary.
func ParseResource(s string) (Resource, error) {
	for _, r := range Resources {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown resource %q", s)
}

// Permission is the atomic grantable unit, identified by (action, resource).
// MANAGE is stored as a distinct permission and is never expanded at query
// time; grant lists enumerate every action explicitly.
type Permission struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Action   Action   `gorm:"type:varchar(20);not null;uniqueIndex:idx_permissions_action_resource" json:"action"`
	Resource Resource `gorm:"type:varchar(30);not null;uniqueIndex:idx_permissions_action_resource" json:"resource"`
}

// PermissionKey is the natural identity of a permission, independent of the
// row id assigned by the store.
type PermissionKey struct {
	Action   Action
	Resource Resource
}

func (p Permission) Key() PermissionKey {
	return PermissionKey{Action: p.Action, Resource: p.Resource}
}

// Catalog returns the full fixed permission enumeration.
func Catalog() []Permission {
	perms := make([]Permission, 0, len(Actions)*len(Resources))
	for _, res := range Resources {
		for _, act := range Actions {
			perms = append(perms, Permission{Action: act, Resource: res})
		}
	}
	return perms
}
