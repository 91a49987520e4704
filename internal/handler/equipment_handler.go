package handler

import (
	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"
	"go-ops-erp/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type EquipmentHandler struct {
	repo repository.EquipmentRepository
}

func NewEquipmentHandler(repo repository.EquipmentRepository) *EquipmentHandler {
	return &EquipmentHandler{repo: repo}
}

func (h *EquipmentHandler) GetEquipment(c *fiber.Ctx) error {
	equipment, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch equipment"})
	}
	return c.JSON(equipment)
}

func (h *EquipmentHandler) GetEquipmentByID(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid equipment ID"})
	}

	equipment, err := h.repo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Equipment not found"})
	}
	return c.JSON(equipment)
}

func (h *EquipmentHandler) CreateEquipment(c *fiber.Ctx) error {
	var equipment model.Equipment
	if err := c.BodyParser(&equipment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(&equipment)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if existing, _ := h.repo.FindBySerial(equipment.Serial); existing != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Serial already registered"})
	}

	equipment.CreatedBy = getUserID(c)
	equipment.UpdatedBy = getUserID(c)
	if equipment.Status == "" {
		equipment.Status = model.EquipmentOperational
	}

	if err := h.repo.Create(&equipment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Equipment created", "data": equipment})
}

func (h *EquipmentHandler) UpdateEquipment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid equipment ID"})
	}

	existing, err := h.repo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Equipment not found"})
	}

	var update model.Equipment
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(&update)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	existing.Name = update.Name
	existing.Brand = update.Brand
	existing.ModelName = update.ModelName
	existing.ClientID = update.ClientID
	existing.Notes = update.Notes
	if update.Status != "" {
		existing.Status = update.Status
	}
	existing.UpdatedBy = getUserID(c)

	if err := h.repo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Equipment updated", "data": existing})
}

func (h *EquipmentHandler) DeleteEquipment(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid equipment ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Equipment deleted"})
}
