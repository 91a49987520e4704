package service

import (
	"errors"

	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"
	"go-ops-erp/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Logout(userID uuid.UUID) error
	ResetPassword(email, oldPassword, newPassword string) error
	ValidateToken(tokenString string) (*model.User, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	users repository.UserRepository
	rbac  RBACService
}

func NewAuthService(users repository.UserRepository, rbac RBACService) AuthService {
	return &authService{users: users, rbac: rbac}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// Single session: a fresh version invalidates tokens from earlier logins.
	newTokenVersion := uuid.New().String()
	if err := s.users.UpdateTokenVersion(user.ID, newTokenVersion); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, newTokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	roles, err := s.rbac.UserRoles(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(roles, ResolvePrimaryRole(roles)),
	}, nil
}

// Logout bumps the token version so every outstanding token stops validating.
func (s *authService) Logout(userID uuid.UUID) error {
	return s.users.UpdateTokenVersion(userID, uuid.New().String())
}

func (s *authService) ResetPassword(email, oldPassword, newPassword string) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return ErrUserNotFound
	}

	if !user.CheckPassword(oldPassword) {
		return ErrWrongPassword
	}

	if err := user.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash new password")
	}

	return s.users.UpdatePassword(user.ID, user.Password)
}

// ValidateToken fully verifies a session token against the store: signature,
// expiry, account status and token version.
func (s *authService) ValidateToken(tokenString string) (*model.User, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if user.TokenVersion != claims.TokenVersion {
		return nil, errors.New("session expired (logged in elsewhere)")
	}

	return user, nil
}
