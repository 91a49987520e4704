package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"go-ops-erp/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	granted map[model.PermissionKey]bool
	err     error
}

func (s *stubChecker) HasPermission(_ uuid.UUID, action model.Action, resource model.Resource) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.granted[model.PermissionKey{Action: action, Resource: resource}], nil
}

func newAuthorizedApp(checker *stubChecker, userID string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals("user_id", userID)
		}
		return c.Next()
	})
	app.Get("/clients",
		RequirePermission(checker, model.ActionRead, model.ResourceClient),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)
	return app
}

func TestRequirePermissionGranted(t *testing.T) {
	checker := &stubChecker{granted: map[model.PermissionKey]bool{
		{Action: model.ActionRead, Resource: model.ResourceClient}: true,
	}}
	app := newAuthorizedApp(checker, uuid.New().String())

	resp, err := app.Test(httptest.NewRequest("GET", "/clients", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequirePermissionDenied(t *testing.T) {
	app := newAuthorizedApp(&stubChecker{}, uuid.New().String())

	resp, err := app.Test(httptest.NewRequest("GET", "/clients", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequirePermissionDeniesOnStoreError(t *testing.T) {
	app := newAuthorizedApp(&stubChecker{err: errors.New("store unavailable")}, uuid.New().String())

	resp, err := app.Test(httptest.NewRequest("GET", "/clients", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequirePermissionDeniesWithoutIdentity(t *testing.T) {
	checker := &stubChecker{granted: map[model.PermissionKey]bool{
		{Action: model.ActionRead, Resource: model.ResourceClient}: true,
	}}
	app := newAuthorizedApp(checker, "")

	resp, err := app.Test(httptest.NewRequest("GET", "/clients", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
