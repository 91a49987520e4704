package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRoleAssignment binds a user to a role, optionally time-bounded. An
// assignment past ExpiresAt is inert: it contributes neither to the effective
// permission set nor to primary-role resolution.
type UserRoleAssignment struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_assignments_user_role" json:"user_id"`
	RoleID     uint       `gorm:"not null;uniqueIndex:idx_assignments_user_role" json:"role_id"`
	Role       *Role      `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	AssignedAt time.Time  `gorm:"not null" json:"assigned_at"`
	AssignedBy *uuid.UUID `gorm:"type:uuid" json:"assigned_by,omitempty"`
	ExpiresAt  *time.Time `gorm:"index" json:"expires_at,omitempty"`
}

// Expired reports whether the assignment is past its expiry at the given time.
func (a UserRoleAssignment) Expired(now time.Time) bool {
	return a.ExpiresAt != nil && !a.ExpiresAt.After(now)
}
