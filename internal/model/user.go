package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents an authenticated account. Roles are bound through
// UserRoleAssignment rows, never directly.
type User struct {
	BaseModel
	Email       string               `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password    string               `gorm:"type:varchar(255);not null" json:"-"`
	FullName    string               `gorm:"type:varchar(255)" json:"full_name" validate:"required"`
	PhoneNumber string               `gorm:"type:varchar(20)" json:"phone_number"`
	IsActive    bool                 `gorm:"default:true" json:"is_active"`
	Assignments []UserRoleAssignment `gorm:"foreignKey:UserID" json:"assignments,omitempty"`

	// Bumped on each login and logout to invalidate older tokens.
	TokenVersion string `gorm:"type:varchar(255);default:''" json:"-"`
}

// SetPassword hashes and sets the user's password.
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies a password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// ActiveRoles returns the roles behind non-expired assignments to active
// roles, when assignments are preloaded.
func (u *User) ActiveRoles(now time.Time) []Role {
	var roles []Role
	for _, a := range u.Assignments {
		if a.Expired(now) || a.Role == nil || !a.Role.IsActive {
			continue
		}
		roles = append(roles, *a.Role)
	}
	return roles
}

// UserResponse is the API shape of a user, without credentials.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	IsActive    bool      `json:"is_active"`
	Roles       []Role    `json:"roles"`
	PrimaryRole string    `json:"primary_role"`
}

// ToResponse converts a User to its API shape. Roles and the primary-role
// label are resolved by the caller.
func (u *User) ToResponse(roles []Role, primaryRole string) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		IsActive:    u.IsActive,
		Roles:       roles,
		PrimaryRole: primaryRole,
	}
}
