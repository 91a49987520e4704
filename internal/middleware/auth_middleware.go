package middleware

import (
	"strings"

	"go-ops-erp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth resolves and fully validates the caller's identity from the
// session cookie or a bearer header, and sets user info in the request
// context for downstream handlers.
func RequireAuth(authService service.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(cookieName)
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing session token"})
		}

		user, err := authService.ValidateToken(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired session"})
		}

		c.Locals("user_id", user.ID.String())
		c.Locals("user_email", user.Email)
		c.Locals("user_name", user.FullName)

		return c.Next()
	}
}
