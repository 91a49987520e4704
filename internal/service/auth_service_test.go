package service

import (
	"errors"
	"testing"

	"go-ops-erp/internal/model"
	"go-ops-erp/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	user         *model.User
	tokenVersion string
}

func (s *stubUserRepo) FindByEmail(email string) (*model.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, errors.New("record not found")
	}
	return s.user, nil
}

func (s *stubUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, errors.New("record not found")
	}
	return s.user, nil
}

func (s *stubUserRepo) FindAll() ([]model.User, error) { return nil, nil }
func (s *stubUserRepo) Create(*model.User) error       { return nil }
func (s *stubUserRepo) Update(*model.User) error       { return nil }
func (s *stubUserRepo) Delete(uuid.UUID) error         { return nil }
func (s *stubUserRepo) UpdatePassword(uuid.UUID, string) error {
	return nil
}

func (s *stubUserRepo) UpdateTokenVersion(_ uuid.UUID, version string) error {
	s.tokenVersion = version
	if s.user != nil {
		s.user.TokenVersion = version
	}
	return nil
}

type stubRBAC struct {
	roles []model.Role
}

func (s *stubRBAC) Seed() (*SeedResult, error) { return nil, nil }
func (s *stubRBAC) HasPermission(uuid.UUID, model.Action, model.Resource) (bool, error) {
	return false, nil
}
func (s *stubRBAC) EffectivePermissions(uuid.UUID) (map[model.PermissionKey]struct{}, error) {
	return nil, nil
}
func (s *stubRBAC) UserRoles(uuid.UUID) ([]model.Role, error) { return s.roles, nil }
func (s *stubRBAC) PrimaryRole(uuid.UUID) (string, error) {
	return ResolvePrimaryRole(s.roles), nil
}

func newTestUser(t *testing.T, password string) *model.User {
	t.Helper()
	user := &model.User{
		Email:    "tech@example.com",
		FullName: "Field Tech",
		IsActive: true,
	}
	user.ID = uuid.New()
	require.NoError(t, user.SetPassword(password))
	return user
}

func TestLoginSuccess(t *testing.T) {
	user := newTestUser(t, "secret123")
	repo := &stubUserRepo{user: user}
	svc := NewAuthService(repo, &stubRBAC{roles: []model.Role{{Name: model.RoleOperator, IsActive: true}}})

	resp, err := svc.Login("tech@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleOperator, resp.User.PrimaryRole)
	assert.NotEmpty(t, repo.tokenVersion, "login must rotate the token version")

	claims, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, repo.tokenVersion, claims.TokenVersion)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &stubUserRepo{user: newTestUser(t, "secret123")}
	svc := NewAuthService(repo, &stubRBAC{})

	_, err := svc.Login("tech@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, &stubRBAC{})
	_, err := svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	user := newTestUser(t, "secret123")
	user.IsActive = false
	svc := NewAuthService(&stubUserRepo{user: user}, &stubRBAC{})

	_, err := svc.Login("tech@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestValidateTokenRejectsOldSession(t *testing.T) {
	user := newTestUser(t, "secret123")
	repo := &stubUserRepo{user: user}
	svc := NewAuthService(repo, &stubRBAC{})

	resp, err := svc.Login("tech@example.com", "secret123")
	require.NoError(t, err)

	// A second login invalidates the first token
	_, err = svc.Login("tech@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.Token)
	assert.Error(t, err)
}

func TestValidateTokenSuccess(t *testing.T) {
	user := newTestUser(t, "secret123")
	repo := &stubUserRepo{user: user}
	svc := NewAuthService(repo, &stubRBAC{})

	resp, err := svc.Login("tech@example.com", "secret123")
	require.NoError(t, err)

	validated, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, validated.ID)
}
