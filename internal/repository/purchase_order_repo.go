package repository

import (
	"go-ops-erp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseOrderRepository interface {
	FindAll() ([]model.PurchaseOrder, error)
	FindByID(id uuid.UUID) (*model.PurchaseOrder, error)
	Create(order *model.PurchaseOrder) error
	Update(order *model.PurchaseOrder) error
	Delete(id uuid.UUID) error
	CountByStatus(status model.PurchaseOrderStatus) (int64, error)
}

type purchaseOrderRepo struct {
	db *gorm.DB
}

func NewPurchaseOrderRepo(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db}
}

func (r *purchaseOrderRepo) FindAll() ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	err := r.db.Preload("Provider").Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepo) FindByID(id uuid.UUID) (*model.PurchaseOrder, error) {
	var order model.PurchaseOrder
	if err := r.db.Preload("Provider").Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *purchaseOrderRepo) Create(order *model.PurchaseOrder) error {
	return r.db.Create(order).Error
}

func (r *purchaseOrderRepo) Update(order *model.PurchaseOrder) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
}

func (r *purchaseOrderRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.PurchaseOrder{}, "id = ?", id).Error
}

func (r *purchaseOrderRepo) CountByStatus(status model.PurchaseOrderStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.PurchaseOrder{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
