package repository

import (
	"go-ops-erp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceOrderRepository interface {
	FindAll() ([]model.ServiceOrder, error)
	FindByID(id uuid.UUID) (*model.ServiceOrder, error)
	Create(order *model.ServiceOrder) error
	Update(order *model.ServiceOrder) error
	Delete(id uuid.UUID) error
	CountByStatus(status model.ServiceOrderStatus) (int64, error)
}

type serviceOrderRepo struct {
	db *gorm.DB
}

func NewServiceOrderRepo(db *gorm.DB) ServiceOrderRepository {
	return &serviceOrderRepo{db}
}

func (r *serviceOrderRepo) FindAll() ([]model.ServiceOrder, error) {
	var orders []model.ServiceOrder
	err := r.db.Preload("Client").Preload("Equipment").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *serviceOrderRepo) FindByID(id uuid.UUID) (*model.ServiceOrder, error) {
	var order model.ServiceOrder
	if err := r.db.Preload("Client").Preload("Equipment").First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *serviceOrderRepo) Create(order *model.ServiceOrder) error {
	return r.db.Create(order).Error
}

func (r *serviceOrderRepo) Update(order *model.ServiceOrder) error {
	return r.db.Save(order).Error
}

func (r *serviceOrderRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.ServiceOrder{}, "id = ?", id).Error
}

func (r *serviceOrderRepo) CountByStatus(status model.ServiceOrderStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.ServiceOrder{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
