package middleware

import (
	"go-ops-erp/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PermissionChecker is the slice of the authorization engine the middleware
// needs.
type PermissionChecker interface {
	HasPermission(userID uuid.UUID, action model.Action, resource model.Resource) (bool, error)
}

// RequirePermission checks the authenticated user's effective permission set
// for (action, resource). The store is re-read on every request, so grant
// edits apply to the next check. A store failure denies: never fail open.
func RequirePermission(checker PermissionChecker, action model.Action, resource model.Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, _ := c.Locals("user_id").(string)
		userID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden"})
		}

		ok, err := checker.HasPermission(userID, action, resource)
		if err != nil {
			return c.Status(403).JSON(fiber.Map{"error": "Authorization check failed"})
		}
		if !ok {
			return c.Status(403).JSON(fiber.Map{
				"error": "Forbidden: requires " + string(action) + " on " + string(resource),
			})
		}

		return c.Next()
	}
}
