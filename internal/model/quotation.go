package model

import "github.com/google/uuid"

type QuotationStatus string

const (
	QuotationDraft    QuotationStatus = "DRAFT"
	QuotationSent     QuotationStatus = "SENT"
	QuotationApproved QuotationStatus = "APPROVED"
	QuotationRejected QuotationStatus = "REJECTED"
)

type Quotation struct {
	BaseModel
	Folio    string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"folio" validate:"required"`
	ClientID uuid.UUID       `gorm:"type:uuid;not null" json:"client_id" validate:"uuid_required"`
	Client   *Client         `gorm:"foreignKey:ClientID" json:"client,omitempty" validate:"-"`
	Status   QuotationStatus `gorm:"type:varchar(20);default:'DRAFT'" json:"status" validate:"omitempty,oneof=DRAFT SENT APPROVED REJECTED"`
	Notes    string          `gorm:"type:text" json:"notes"`
	Total    int64           `gorm:"default:0" json:"total"` // snapshot of the item subtotals at save time
	Items    []QuotationItem `gorm:"foreignKey:QuotationID" json:"items,omitempty"`
}

type QuotationItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	QuotationID uuid.UUID `gorm:"type:uuid;not null;index" json:"quotation_id"`
	Description string    `gorm:"type:varchar(255);not null" json:"description" validate:"required"`
	Quantity    int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice   int64     `gorm:"not null" json:"unit_price" validate:"gte=0"`
	Subtotal    int64     `gorm:"not null" json:"subtotal"`
}
