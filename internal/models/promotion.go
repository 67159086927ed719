package models

import (
	"time"

	"gorm.io/gorm"
)

// Promotion dates are yyyy-MM-dd strings. DiscountRate is stored as text;
// values below 1 are fractions (0.1 = 10%), values >= 1 are percents.
type Promotion struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Description  string         `json:"description" gorm:"type:text"`
	StartDate    string         `json:"start_date" gorm:"not null"`
	EndDate      string         `json:"end_date" gorm:"not null"`
	DiscountRate string         `json:"discount_rate" gorm:"not null"`
	Type         string         `json:"type"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
