package model

// RolePermission is the explicit join entity behind Role.Permissions. Keeping
// it as a model gives the (role_id, permission_id) pair a real unique index so
// grant writes can be keyed upserts.
type RolePermission struct {
	RoleID       uint `gorm:"not null;uniqueIndex:idx_role_permissions_role_permission" json:"role_id"`
	PermissionID uint `gorm:"not null;uniqueIndex:idx_role_permissions_role_permission" json:"permission_id"`
}
