package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Identity helpers reading what RequireAuth put in the request context.

func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return ""
	}
	return userID.(string)
}

func getUserName(c *fiber.Ctx) string {
	userName := c.Locals("user_name")
	if userName == nil {
		return "Unknown"
	}
	return userName.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
