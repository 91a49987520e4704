package repository

import (
	"go-ops-erp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderRepository interface {
	FindAll() ([]model.Provider, error)
	FindByID(id uuid.UUID) (*model.Provider, error)
	Create(provider *model.Provider) error
	Update(provider *model.Provider) error
	Delete(id uuid.UUID) error
}

type providerRepo struct {
	db *gorm.DB
}

func NewProviderRepo(db *gorm.DB) ProviderRepository {
	return &providerRepo{db}
}

func (r *providerRepo) FindAll() ([]model.Provider, error) {
	var providers []model.Provider
	err := r.db.Order("name").Find(&providers).Error
	return providers, err
}

func (r *providerRepo) FindByID(id uuid.UUID) (*model.Provider, error) {
	var provider model.Provider
	if err := r.db.First(&provider, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepo) Create(provider *model.Provider) error {
	return r.db.Create(provider).Error
}

func (r *providerRepo) Update(provider *model.Provider) error {
	return r.db.Save(provider).Error
}

func (r *providerRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Provider{}, "id = ?", id).Error
}
