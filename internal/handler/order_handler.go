package handler

import (
	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"
	"go-ops-erp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service        service.OrderService
	serviceOrders  repository.ServiceOrderRepository
	purchaseOrders repository.PurchaseOrderRepository
}

func NewOrderHandler(s service.OrderService, serviceOrders repository.ServiceOrderRepository, purchaseOrders repository.PurchaseOrderRepository) *OrderHandler {
	return &OrderHandler{
		service:        s,
		serviceOrders:  serviceOrders,
		purchaseOrders: purchaseOrders,
	}
}

func (h *OrderHandler) GetServiceOrders(c *fiber.Ctx) error {
	orders, err := h.serviceOrders.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch service orders"})
	}
	return c.JSON(orders)
}

func (h *OrderHandler) GetServiceOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.serviceOrders.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Service order not found"})
	}
	return c.JSON(order)
}

func (h *OrderHandler) CreateServiceOrder(c *fiber.Ctx) error {
	var order model.ServiceOrder
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateServiceOrder(&order, getUserID(c), getUserName(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Service order created", "data": order})
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) UpdateServiceOrderStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	switch model.ServiceOrderStatus(req.Status) {
	case model.ServiceOrderOpen, model.ServiceOrderInProgress, model.ServiceOrderCompleted, model.ServiceOrderCancelled:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
	}

	order, err := h.service.UpdateServiceOrderStatus(id, model.ServiceOrderStatus(req.Status), getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Status updated", "data": order})
}

func (h *OrderHandler) GetPurchaseOrders(c *fiber.Ctx) error {
	orders, err := h.purchaseOrders.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch purchase orders"})
	}
	return c.JSON(orders)
}

func (h *OrderHandler) GetPurchaseOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.purchaseOrders.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Purchase order not found"})
	}
	return c.JSON(order)
}

func (h *OrderHandler) CreatePurchaseOrder(c *fiber.Ctx) error {
	var order model.PurchaseOrder
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreatePurchaseOrder(&order, getUserID(c), getUserName(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Purchase order created", "data": order})
}

func (h *OrderHandler) UpdatePurchaseOrderStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	switch model.PurchaseOrderStatus(req.Status) {
	case model.PurchaseOrderOpen, model.PurchaseOrderReceived, model.PurchaseOrderCancelled:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
	}

	order, err := h.service.UpdatePurchaseOrderStatus(id, model.PurchaseOrderStatus(req.Status), getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Status updated", "data": order})
}
