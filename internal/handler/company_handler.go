package handler

import (
	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"
	"go-ops-erp/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type CompanyHandler struct {
	repo repository.CompanyRepository
}

func NewCompanyHandler(repo repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{repo: repo}
}

// GetCompany returns the organization profile.
// GET /api/v1/company
func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	company, err := h.repo.Get()
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Company profile not set"})
	}
	return c.JSON(company)
}

// UpdateCompany creates or updates the organization profile.
// PUT /api/v1/company
func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	var update model.Company
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(&update)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	existing, err := h.repo.Get()
	if err == nil {
		existing.Name = update.Name
		existing.TaxID = update.TaxID
		existing.Email = update.Email
		existing.PhoneNumber = update.PhoneNumber
		existing.Address = update.Address
		existing.LogoURL = update.LogoURL
		existing.UpdatedBy = getUserID(c)
		update = *existing
	} else {
		update.CreatedBy = getUserID(c)
		update.UpdatedBy = getUserID(c)
	}

	if err := h.repo.Save(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Company profile saved", "data": update})
}
