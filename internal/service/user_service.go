package service

import (
	"errors"
	"time"

	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"
	"go-ops-erp/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrEmailExists  = errors.New("email already exists")
	ErrRoleNotFound = errors.New("role not found")
)

type UserService interface {
	CreateUser(req *CreateUserRequest, creatorID string) (*model.User, error)
	UpdateUser(userID uuid.UUID, req *UpdateUserRequest, updaterID string) (*model.User, error)
	DeleteUser(userID uuid.UUID) error
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
	ListAssignments(userID uuid.UUID) ([]model.UserRoleAssignment, error)
	AssignRole(userID uuid.UUID, roleID uint, expiresAt *time.Time, assignedBy uuid.UUID) error
	RevokeRole(userID uuid.UUID, roleID uint) error
}

type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	RoleID      uint   `json:"role_id" validate:"required"`
}

type UpdateUserRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=6"`
	FullName    string  `json:"full_name" validate:"required"`
	PhoneNumber string  `json:"phone_number"`
	IsActive    *bool   `json:"is_active"`
}

type userService struct {
	users       repository.UserRepository
	roles       repository.RoleRepository
	assignments repository.AssignmentRepository
}

func NewUserService(users repository.UserRepository, roles repository.RoleRepository, assignments repository.AssignmentRepository) UserService {
	return &userService{users: users, roles: roles, assignments: assignments}
}

func (s *userService) CreateUser(req *CreateUserRequest, creatorID string) (*model.User, error) {
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	existing, _ := s.users.FindByEmail(req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	role, err := s.roles.FindByID(req.RoleID)
	if err != nil {
		return nil, ErrRoleNotFound
	}

	user := &model.User{
		Email:       req.Email,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		IsActive:    true,
	}
	user.CreatedBy = creatorID
	user.UpdatedBy = creatorID
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	if err := s.assignments.Assign(&model.UserRoleAssignment{
		UserID:     user.ID,
		RoleID:     role.ID,
		AssignedAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateUser(userID uuid.UUID, req *UpdateUserRequest, updaterID string) (*model.User, error) {
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user.Email = req.Email
	user.FullName = req.FullName
	user.PhoneNumber = req.PhoneNumber
	user.UpdatedBy = updaterID
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(userID uuid.UUID) error {
	return s.users.Delete(userID)
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.users.FindAll()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]model.UserResponse, 0, len(users))
	for i := range users {
		roles := users[i].ActiveRoles(now)
		responses = append(responses, users[i].ToResponse(roles, ResolvePrimaryRole(roles)))
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	roles := user.ActiveRoles(time.Now())
	resp := user.ToResponse(roles, ResolvePrimaryRole(roles))
	return &resp, nil
}

// ListAssignments returns every assignment for a user, expired ones included,
// for admin inspection.
func (s *userService) ListAssignments(userID uuid.UUID) ([]model.UserRoleAssignment, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		return nil, ErrUserNotFound
	}
	return s.assignments.ListForUser(userID)
}

func (s *userService) AssignRole(userID uuid.UUID, roleID uint, expiresAt *time.Time, assignedBy uuid.UUID) error {
	if _, err := s.users.FindByID(userID); err != nil {
		return ErrUserNotFound
	}
	if _, err := s.roles.FindByID(roleID); err != nil {
		return ErrRoleNotFound
	}
	return s.assignments.Assign(&model.UserRoleAssignment{
		UserID:     userID,
		RoleID:     roleID,
		AssignedAt: time.Now(),
		AssignedBy: &assignedBy,
		ExpiresAt:  expiresAt,
	})
}

func (s *userService) RevokeRole(userID uuid.UUID, roleID uint) error {
	return s.assignments.Revoke(userID, roleID)
}
