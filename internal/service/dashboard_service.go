package service

import (
	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"
)

type DashboardStats struct {
	Clients           int64 `json:"clients"`
	Equipment         int64 `json:"equipment"`
	OpenServiceOrders int64 `json:"open_service_orders"`
	OpenPurchases     int64 `json:"open_purchase_orders"`
	PendingQuotations int64 `json:"pending_quotations"`
}

type DashboardService interface {
	GetStats() (*DashboardStats, error)
}

type dashboardService struct {
	clients        repository.ClientRepository
	equipment      repository.EquipmentRepository
	quotations     repository.QuotationRepository
	serviceOrders  repository.ServiceOrderRepository
	purchaseOrders repository.PurchaseOrderRepository
}

func NewDashboardService(
	clients repository.ClientRepository,
	equipment repository.EquipmentRepository,
	quotations repository.QuotationRepository,
	serviceOrders repository.ServiceOrderRepository,
	purchaseOrders repository.PurchaseOrderRepository,
) DashboardService {
	return &dashboardService{
		clients:        clients,
		equipment:      equipment,
		quotations:     quotations,
		serviceOrders:  serviceOrders,
		purchaseOrders: purchaseOrders,
	}
}

func (s *dashboardService) GetStats() (*DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.Clients, err = s.clients.Count(); err != nil {
		return nil, err
	}
	if stats.Equipment, err = s.equipment.Count(); err != nil {
		return nil, err
	}
	if stats.OpenServiceOrders, err = s.serviceOrders.CountByStatus(model.ServiceOrderOpen); err != nil {
		return nil, err
	}
	if stats.OpenPurchases, err = s.purchaseOrders.CountByStatus(model.PurchaseOrderOpen); err != nil {
		return nil, err
	}
	if stats.PendingQuotations, err = s.quotations.CountByStatus(model.QuotationSent); err != nil {
		return nil, err
	}

	return &stats, nil
}
