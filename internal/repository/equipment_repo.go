package repository

import (
	"go-ops-erp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EquipmentRepository interface {
	FindAll() ([]model.Equipment, error)
	FindByID(id uuid.UUID) (*model.Equipment, error)
	FindBySerial(serial string) (*model.Equipment, error)
	Create(equipment *model.Equipment) error
	Update(equipment *model.Equipment) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

type equipmentRepo struct {
	db *gorm.DB
}

func NewEquipmentRepo(db *gorm.DB) EquipmentRepository {
	return &equipmentRepo{db}
}

func (r *equipmentRepo) FindAll() ([]model.Equipment, error) {
	var equipment []model.Equipment
	err := r.db.Preload("Client").Order("name").Find(&equipment).Error
	return equipment, err
}

func (r *equipmentRepo) FindByID(id uuid.UUID) (*model.Equipment, error) {
	var equipment model.Equipment
	if err := r.db.Preload("Client").First(&equipment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *equipmentRepo) FindBySerial(serial string) (*model.Equipment, error) {
	var equipment model.Equipment
	if err := r.db.Where("serial = ?", serial).First(&equipment).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *equipmentRepo) Create(equipment *model.Equipment) error {
	return r.db.Create(equipment).Error
}

func (r *equipmentRepo) Update(equipment *model.Equipment) error {
	return r.db.Save(equipment).Error
}

func (r *equipmentRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Equipment{}, "id = ?", id).Error
}

func (r *equipmentRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Equipment{}).Count(&count).Error
	return count, err
}
