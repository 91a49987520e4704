package repository

import (
	"go-ops-erp/internal/model"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	Get() (*model.Company, error)
	Save(company *model.Company) error
}

type companyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) CompanyRepository {
	return &companyRepo{db}
}

// Get returns the single company profile row.
func (r *companyRepo) Get() (*model.Company, error) {
	var company model.Company
	if err := r.db.First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) Save(company *model.Company) error {
	return r.db.Save(company).Error
}
