package handler

import (
	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	roleRepo repository.RoleRepository
	permRepo repository.PermissionRepository
}

func NewRoleHandler(roleRepo repository.RoleRepository, permRepo repository.PermissionRepository) *RoleHandler {
	return &RoleHandler{roleRepo: roleRepo, permRepo: permRepo}
}

// GetRoles returns all roles with their permission sets.
// GET /api/v1/roles
func (h *RoleHandler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.roleRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roles"})
	}
	return c.JSON(roles)
}

// GetPermissions returns the fixed permission catalog.
// GET /api/v1/permissions
func (h *RoleHandler) GetPermissions(c *fiber.Ctx) error {
	perms, err := h.permRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch permissions"})
	}
	return c.JSON(perms)
}

type CreateRoleRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

// CreateRole adds a custom role. System roles only come from the seeder.
// POST /api/v1/roles
func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	var req CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	role := &model.Role{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Description: req.Description,
		IsSystem:    false,
		IsActive:    true,
	}
	if err := h.roleRepo.Create(role); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to create role"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Role created", "data": role})
}

type UpdateRolePermissionsRequest struct {
	Permissions []struct {
		Action   string `json:"action"`
		Resource string `json:"resource"`
	} `json:"permissions"`
}

// UpdateRolePermissions replaces a custom role's permission set. The
// (action, resource) pairs are validated against the closed taxonomy at this
// boundary; system roles are immutable here.
// PUT /api/v1/roles/:id/permissions
func (h *RoleHandler) UpdateRolePermissions(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role ID"})
	}

	role, err := h.roleRepo.FindByID(uint(id))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Role not found"})
	}
	if role.IsSystem {
		return c.Status(400).JSON(fiber.Map{"error": "System role permissions are managed by the seeder"})
	}

	var req UpdateRolePermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	perms := make([]model.Permission, 0, len(req.Permissions))
	for _, p := range req.Permissions {
		action, err := model.ParseAction(p.Action)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		resource, err := model.ParseResource(p.Resource)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		perm, err := h.permRepo.FindByKey(action, resource)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown permission"})
		}
		perms = append(perms, *perm)
	}

	if err := h.roleRepo.ReplacePermissions(role, perms); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update permissions"})
	}
	return c.JSON(fiber.Map{"message": "Permissions updated", "data": role})
}
