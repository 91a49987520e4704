package model

import "github.com/google/uuid"

type EquipmentStatus string

const (
	EquipmentOperational EquipmentStatus = "OPERATIONAL"
	EquipmentInRepair    EquipmentStatus = "IN_REPAIR"
	EquipmentRetired     EquipmentStatus = "RETIRED"
)

type Equipment struct {
	BaseModel
	Serial    string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"serial" validate:"required"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Brand     string          `gorm:"type:varchar(100)" json:"brand"`
	ModelName string          `gorm:"column:model;type:varchar(100)" json:"model"`
	Status    EquipmentStatus `gorm:"type:varchar(20);default:'OPERATIONAL'" json:"status" validate:"omitempty,oneof=OPERATIONAL IN_REPAIR RETIRED"`
	ClientID  *uuid.UUID      `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Client    *Client         `gorm:"foreignKey:ClientID" json:"client,omitempty" validate:"-"`
	Notes     string          `gorm:"type:text" json:"notes"`
}
