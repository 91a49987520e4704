package middleware

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Infrastructure paths are admitted before any other rule: static assets,
// health probes, framework-internal files, crawlers.
var infraPrefixes = []string{"/_next/", "/static/", "/assets/", "/ws/"}

var infraPaths = map[string]struct{}{
	"/favicon.ico": {},
	"/robots.txt":  {},
	"/sitemap.xml": {},
	"/healthz":     {},
	"/ws":          {},
}

// Public auth-flow paths match exactly; legal pages match by prefix.
var publicPaths = map[string]struct{}{
	"/signin":                     {},
	"/signup":                     {},
	"/forgot-password":            {},
	"/reset-password":             {},
	"/api/v1/auth/login":          {},
	"/api/v1/auth/reset-password": {},
}

var publicPrefixes = []string{"/legal/"}

// SessionGate admits or denies a request on the presence of the session
// cookie alone. It never parses or verifies the cookie; full validation is
// RequireAuth's job, and permission checks the authorization engine's. A
// request without a cookie on a protected path is redirected to sign-in with
// the requested path as the post-login callback.
func SessionGate(cookieName, signInPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		if isInfrastructurePath(path) || isPublicPath(path) {
			return c.Next()
		}

		if sessionCookie(c, cookieName) == "" {
			return c.Redirect(signInPath+"?callbackUrl="+callbackURL(path), fiber.StatusFound)
		}

		return c.Next()
	}
}

// callbackURL escapes the requested path for the callbackUrl query parameter.
// Slashes stay literal so redirects for ordinary paths remain readable.
func callbackURL(path string) string {
	return strings.ReplaceAll(url.QueryEscape(path), "%2F", "/")
}

func isInfrastructurePath(path string) bool {
	if _, ok := infraPaths[path]; ok {
		return true
	}
	for _, prefix := range infraPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isPublicPath(path string) bool {
	if _, ok := publicPaths[path]; ok {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// sessionCookie reads the session cookie; any failure inspecting the request
// counts as no session, so the gate fails closed to the sign-in redirect.
func sessionCookie(c *fiber.Ctx, name string) (value string) {
	defer func() {
		if recover() != nil {
			value = ""
		}
	}()
	return c.Cookies(name)
}
