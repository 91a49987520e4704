package handler

import (
	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"
	"go-ops-erp/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type ProviderHandler struct {
	repo repository.ProviderRepository
}

func NewProviderHandler(repo repository.ProviderRepository) *ProviderHandler {
	return &ProviderHandler{repo: repo}
}

func (h *ProviderHandler) GetProviders(c *fiber.Ctx) error {
	providers, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch providers"})
	}
	return c.JSON(providers)
}

func (h *ProviderHandler) GetProvider(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid provider ID"})
	}

	provider, err := h.repo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Provider not found"})
	}
	return c.JSON(provider)
}

func (h *ProviderHandler) CreateProvider(c *fiber.Ctx) error {
	var provider model.Provider
	if err := c.BodyParser(&provider); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(&provider)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	provider.CreatedBy = getUserID(c)
	provider.UpdatedBy = getUserID(c)
	provider.IsActive = true

	if err := h.repo.Create(&provider); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Provider created", "data": provider})
}

func (h *ProviderHandler) UpdateProvider(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid provider ID"})
	}

	existing, err := h.repo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Provider not found"})
	}

	var update model.Provider
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(&update)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	existing.Name = update.Name
	existing.TaxID = update.TaxID
	existing.Email = update.Email
	existing.PhoneNumber = update.PhoneNumber
	existing.Address = update.Address
	existing.ContactName = update.ContactName
	existing.UpdatedBy = getUserID(c)

	if err := h.repo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Provider updated", "data": existing})
}

func (h *ProviderHandler) DeleteProvider(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid provider ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Provider deleted"})
}
