package handler

import (
	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"
	"go-ops-erp/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	repo repository.ClientRepository
}

func NewClientHandler(repo repository.ClientRepository) *ClientHandler {
	return &ClientHandler{repo: repo}
}

func (h *ClientHandler) GetClients(c *fiber.Ctx) error {
	clients, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch clients"})
	}
	return c.JSON(clients)
}

func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	client, err := h.repo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Client not found"})
	}
	return c.JSON(client)
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var client model.Client
	if err := c.BodyParser(&client); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(&client)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	client.CreatedBy = getUserID(c)
	client.UpdatedBy = getUserID(c)
	client.IsActive = true

	if err := h.repo.Create(&client); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Client created", "data": client})
}

func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	existing, err := h.repo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Client not found"})
	}

	var update model.Client
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
	return c.JSON(fiber.Map{"message": "Client updated", "data": existing})
}

func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Client deleted"})
}
