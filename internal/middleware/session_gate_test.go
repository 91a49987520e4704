package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedApp() *fiber.App {
	app := fiber.New()
	app.Use(SessionGate("session_token", "/signin"))
	app.Get("/clientes", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestSessionGateRedirectsWithoutCookie(t *testing.T) {
	app := newGatedApp()

	req := httptest.NewRequest("GET", "/clientes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/signin?callbackUrl=/clientes", resp.Header.Get("Location"))
}

func TestSessionGateAdmitsWithCookie(t *testing.T) {
	app := newGatedApp()

	req := httptest.NewRequest("GET", "/clientes", nil)
	req.Header.Set("Cookie", "session_token=opaque-value")
	resp, err := app.Test(req)
	require.NoError(t, err)

	// Presence admits; validity is the downstream handler's concern
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSessionGatePublicAndInfraPaths(t *testing.T) {
	app := fiber.New()
	app.Use(SessionGate("session_token", "/signin"))

	cases := []struct {
		path       string
		wantStatus int
	}{
		{"/legal/privacy", fiber.StatusNotFound},       // allowed by prefix, falls through to 404
		{"/legal/terms-of-service", fiber.StatusNotFound},
		{"/_next/static/x.js", fiber.StatusNotFound},   // infrastructure, allowed unconditionally
		{"/ws", fiber.StatusNotFound},
		{"/ws/dashboard", fiber.StatusNotFound},
		{"/wsadmin", fiber.StatusFound},                // shares three characters with /ws, still protected
		{"/favicon.ico", fiber.StatusNotFound},
		{"/robots.txt", fiber.StatusNotFound},
		{"/healthz", fiber.StatusNotFound},
		{"/signin", fiber.StatusNotFound},              // public exact match
		{"/signup", fiber.StatusNotFound},
		{"/api/v1/auth/login", fiber.StatusNotFound},
		{"/quotations", fiber.StatusFound},             // protected: redirect
		{"/legalese", fiber.StatusFound},               // prefix match requires the slash
		{"/api/v1/clients", fiber.StatusFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("GET", tc.path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equalf(t, tc.wantStatus, resp.StatusCode, "path %s", tc.path)
	}
}

func TestSessionGateCallbackCarriesRequestedPath(t *testing.T) {
	app := fiber.New()
	app.Use(SessionGate("session_token", "/signin"))

	req := httptest.NewRequest("GET", "/ordenes/servicio", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/signin?callbackUrl=/ordenes/servicio", resp.Header.Get("Location"))
}

func TestSessionGateCallbackEscapesQueryMetacharacters(t *testing.T) {
	app := fiber.New()
	app.Use(SessionGate("session_token", "/signin"))

	req := httptest.NewRequest("GET", "/reports/a&b", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/signin?callbackUrl=/reports/a%26b", resp.Header.Get("Location"))
}
