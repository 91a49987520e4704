package model

type Client struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	TaxID       string `gorm:"type:varchar(30);index" json:"tax_id"`
	Email       string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	PhoneNumber string `gorm:"type:varchar(20)" json:"phone_number"`
	Address     string `gorm:"type:text" json:"address"`
	ContactName string `gorm:"type:varchar(255)" json:"contact_name"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}
