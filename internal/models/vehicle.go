package models

import (
	"time"

	"gorm.io/gorm"
)

type VehicleModel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Brand     string         `json:"brand"`
	ListPrice float64        `json:"list_price" gorm:"not null"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type VehicleVariant struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ModelID     uint           `json:"model_id" gorm:"index;not null"`
	VersionName string         `json:"version_name" gorm:"not null"`
	Color       string         `json:"color"`
	Price       float64        `json:"price" gorm:"not null"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// VehicleSerial is one physical unit. A serial referenced by an order
// detail is consumed; there is no separate released/available state.
type VehicleSerial struct {
	SerialNumber string    `json:"serial_number" gorm:"primaryKey"`
	VariantID    uint      `json:"variant_id" gorm:"index;not null"`
	CreatedAt    time.Time `json:"created_at"`
}
