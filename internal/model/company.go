package model

// Company is the single organization profile printed on documents.
type Company struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	TaxID       string `gorm:"type:varchar(30)" json:"tax_id"`
	Email       string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	PhoneNumber string `gorm:"type:varchar(20)" json:"phone_number"`
	Address     string `gorm:"type:text" json:"address"`
	LogoURL     string `gorm:"type:varchar(500)" json:"logo_url"`
}
