package model

import "github.com/google/uuid"

type ServiceOrderStatus string

const (
	ServiceOrderOpen       ServiceOrderStatus = "OPEN"
	ServiceOrderInProgress ServiceOrderStatus = "IN_PROGRESS"
	ServiceOrderCompleted  ServiceOrderStatus = "COMPLETED"
	ServiceOrderCancelled  ServiceOrderStatus = "CANCELLED"
)

type ServiceOrder struct {
	BaseModel
	Folio       string             `gorm:"type:varchar(30);uniqueIndex;not null" json:"folio" validate:"required"`
	ClientID    uuid.UUID          `gorm:"type:uuid;not null" json:"client_id" validate:"uuid_required"`
	Client      *Client            `gorm:"foreignKey:ClientID" json:"client,omitempty" validate:"-"`
	EquipmentID *uuid.UUID         `gorm:"type:uuid;index" json:"equipment_id,omitempty"`
	Equipment   *Equipment         `gorm:"foreignKey:EquipmentID" json:"equipment,omitempty" validate:"-"`
	Status      ServiceOrderStatus `gorm:"type:varchar(20);default:'OPEN'" json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS COMPLETED CANCELLED"`
	Description string             `gorm:"type:text" json:"description"`
	Diagnosis   string             `gorm:"type:text" json:"diagnosis"`
	Total       int64              `gorm:"default:0" json:"total"`
}

type PurchaseOrderStatus string

const (
	PurchaseOrderOpen      PurchaseOrderStatus = "OPEN"
	PurchaseOrderReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderCancelled PurchaseOrderStatus = "CANCELLED"
)

type PurchaseOrder struct {
	BaseModel
	Folio      string              `gorm:"type:varchar(30);uniqueIndex;not null" json:"folio" validate:"required"`
	ProviderID uuid.UUID           `gorm:"type:uuid;not null" json:"provider_id" validate:"uuid_required"`
	Provider   *Provider           `gorm:"foreignKey:ProviderID" json:"provider,omitempty" validate:"-"`
	Status     PurchaseOrderStatus `gorm:"type:varchar(20);default:'OPEN'" json:"status" validate:"omitempty,oneof=OPEN RECEIVED CANCELLED"`
	Notes      string              `gorm:"type:text" json:"notes"`
	Total      int64               `gorm:"default:0" json:"total"`
	Items      []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
}

type PurchaseOrderItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	Description     string    `gorm:"type:varchar(255);not null" json:"description" validate:"required"`
	Quantity        int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice       int64     `gorm:"not null" json:"unit_price" validate:"gte=0"`
	Subtotal        int64     `gorm:"not null" json:"subtotal"`
}
