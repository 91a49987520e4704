package handler

import (
	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"
	"go-ops-erp/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type QuotationHandler struct {
	repo repository.QuotationRepository
}

func NewQuotationHandler(repo repository.QuotationRepository) *QuotationHandler {
	return &QuotationHandler{repo: repo}
}

func (h *QuotationHandler) GetQuotations(c *fiber.Ctx) error {
	quotations, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch quotations"})
	}
	return c.JSON(quotations)
}

func (h *QuotationHandler) GetQuotation(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quotation ID"})
	}

	quotation, err := h.repo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Quotation not found"})
	}
	return c.JSON(quotation)
}

func (h *QuotationHandler) CreateQuotation(c *fiber.Ctx) error {
	var quotation model.Quotation
	if err := c.BodyParser(&quotation); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(&quotation)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	quotation.CreatedBy = getUserID(c)
	quotation.UpdatedBy = getUserID(c)
	if quotation.Status == "" {
		quotation.Status = model.QuotationDraft
	}
	quotation.Total = itemTotal(quotation.Items)

	if err := h.repo.Create(&quotation); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Quotation created", "data": quotation})
}

func (h *QuotationHandler) UpdateQuotation(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quotation ID"})
	}

	existing, err := h.repo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Quotation not found"})
	}

	var update model.Quotation
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.Notes = update.Notes
	if update.Status != "" {
		existing.Status = update.Status
	}
	if update.Items != nil {
		for i := range update.Items {
			update.Items[i].QuotationID = existing.ID
		}
		existing.Items = update.Items
		existing.Total = itemTotal(update.Items)
	}
	existing.UpdatedBy = getUserID(c)

	if err := h.repo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Quotation updated", "data": existing})
}

func (h *QuotationHandler) DeleteQuotation(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quotation ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Quotation deleted"})
}

func itemTotal(items []model.QuotationItem) int64 {
	var total int64
	for i := range items {
		items[i].Subtotal = int64(items[i].Quantity) * items[i].UnitPrice
		total += items[i].Subtotal
	}
	return total
}
