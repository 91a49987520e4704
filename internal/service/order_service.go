package service

import (
	"errors"

	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"
	"go-ops-erp/internal/ws"
	"go-ops-erp/pkg/validator"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderService handles service and purchase order mutations and broadcasts
// changes to connected dashboards.
type OrderService interface {
	CreateServiceOrder(order *model.ServiceOrder, createdBy, actorName string) error
	UpdateServiceOrderStatus(id uuid.UUID, status model.ServiceOrderStatus, updatedBy, actorName string) (*model.ServiceOrder, error)
	CreatePurchaseOrder(order *model.PurchaseOrder, createdBy, actorName string) error
	UpdatePurchaseOrderStatus(id uuid.UUID, status model.PurchaseOrderStatus, updatedBy, actorName string) (*model.PurchaseOrder, error)
}

// orderEvent is the dashboard broadcast payload.
type orderEvent struct {
	Actor string      `json:"actor"`
	Order interface{} `json:"order"`
}

type orderService struct {
	serviceOrders  repository.ServiceOrderRepository
	purchaseOrders repository.PurchaseOrderRepository
	hub            *ws.Hub
}

func NewOrderService(serviceOrders repository.ServiceOrderRepository, purchaseOrders repository.PurchaseOrderRepository, hub *ws.Hub) OrderService {
	return &orderService{
		serviceOrders:  serviceOrders,
		purchaseOrders: purchaseOrders,
		hub:            hub,
	}
}

func (s *orderService) CreateServiceOrder(order *model.ServiceOrder, createdBy, actorName string) error {
	if err := validator.FirstError(validator.ValidateStruct(order)); err != nil {
		return err
	}
	order.CreatedBy = createdBy
	order.UpdatedBy = createdBy
	if order.Status == "" {
		order.Status = model.ServiceOrderOpen
	}
	if err := s.serviceOrders.Create(order); err != nil {
		return err
	}
	s.broadcast("service_order_created", actorName, order)
	return nil
}

func (s *orderService) UpdateServiceOrderStatus(id uuid.UUID, status model.ServiceOrderStatus, updatedBy, actorName string) (*model.ServiceOrder, error) {
	order, err := s.serviceOrders.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedBy = updatedBy
	if err := s.serviceOrders.Update(order); err != nil {
		return nil, err
	}
	s.broadcast("service_order_updated", actorName, order)
	return order, nil
}

func (s *orderService) CreatePurchaseOrder(order *model.PurchaseOrder, createdBy, actorName string) error {
	if err := validator.FirstError(validator.ValidateStruct(order)); err != nil {
		return err
	}
	order.CreatedBy = createdBy
	order.UpdatedBy = createdBy
	if order.Status == "" {
		order.Status = model.PurchaseOrderOpen
	}
	var total int64
	for i := range order.Items {
		order.Items[i].Subtotal = int64(order.Items[i].Quantity) * order.Items[i].UnitPrice
		total += order.Items[i].Subtotal
	}
	order.Total = total
	if err := s.purchaseOrders.Create(order); err != nil {
		return err
	}
	s.broadcast("purchase_order_created", actorName, order)
	return nil
}

func (s *orderService) UpdatePurchaseOrderStatus(id uuid.UUID, status model.PurchaseOrderStatus, updatedBy, actorName string) (*model.PurchaseOrder, error) {
	order, err := s.purchaseOrders.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedBy = updatedBy
	if err := s.purchaseOrders.Update(order); err != nil {
		return nil, err
	}
	s.broadcast("purchase_order_updated", actorName, order)
	return order, nil
}

func (s *orderService) broadcast(eventType, actor string, order interface{}) {
	if s.hub == nil {
		return
	}
	go s.hub.BroadcastEvent(eventType, orderEvent{Actor: actor, Order: order})
}
