package repository

import (
	"go-ops-erp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuotationRepository interface {
	FindAll() ([]model.Quotation, error)
	FindByID(id uuid.UUID) (*model.Quotation, error)
	Create(quotation *model.Quotation) error
	Update(quotation *model.Quotation) error
	Delete(id uuid.UUID) error
	CountByStatus(status model.QuotationStatus) (int64, error)
}

type quotationRepo struct {
	db *gorm.DB
}

func NewQuotationRepo(db *gorm.DB) QuotationRepository {
	return &quotationRepo{db}
}

func (r *quotationRepo) FindAll() ([]model.Quotation, error) {
	var quotations []model.Quotation
	err := r.db.Preload("Client").Preload("Items").Order("created_at DESC").Find(&quotations).Error
	return quotations, err
}

func (r *quotationRepo) FindByID(id uuid.UUID) (*model.Quotation, error) {
	var quotation model.Quotation
	if err := r.db.Preload("Client").Preload("Items").First(&quotation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &quotation, nil
}

func (r *quotationRepo) Create(quotation *model.Quotation) error {
	return r.db.Create(quotation).Error
}

func (r *quotationRepo) Update(quotation *model.Quotation) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(quotation).Error
}

func (r *quotationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Quotation{}, "id = ?", id).Error
}

func (r *quotationRepo) CountByStatus(status model.QuotationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.Quotation{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
