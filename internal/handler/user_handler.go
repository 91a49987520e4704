package handler

import (
	"time"

	"go-ops-erp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	return c.JSON(users)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	user, err := h.service.GetUserByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := h.service.CreateUser(&req, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "User created", "data": user})
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := h.service.UpdateUser(id, &req, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "User updated", "data": user})
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	if err := h.service.DeleteUser(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

// ListUserRoles returns a user's role assignments, expired ones included.
// GET /api/v1/users/:id/roles
func (h *UserHandler) ListUserRoles(c *fiber.Ctx) error {
	userID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	assignments, err := h.service.ListAssignments(userID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(assignments)
}

type AssignRoleRequest struct {
	RoleID    uint       `json:"role_id"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// AssignRole grants a role to a user, optionally time-bounded.
// POST /api/v1/users/:id/roles
func (h *UserHandler) AssignRole(c *fiber.Ctx) error {
	userID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var req AssignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.RoleID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "role_id is required"})
	}

	assignedBy, err := parseUUID(getUserID(c))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := h.service.AssignRole(userID, req.RoleID, req.ExpiresAt, assignedBy); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Role assigned"})
}

// RevokeRole removes a role assignment.
// DELETE /api/v1/users/:id/roles/:roleId
func (h *UserHandler) RevokeRole(c *fiber.Ctx) error {
	userID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	roleID, err := c.ParamsInt("roleId")
	if err != nil || roleID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role ID"})
	}

	if err := h.service.RevokeRole(userID, uint(roleID)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Role revoked"})
}
