package models

import (
	"time"

	"gorm.io/gorm"
)

type Dealer struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Address     string         `json:"address" gorm:"type:text"`
	PhoneNumber string         `json:"phone_number"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// DealerPromotion links a promotion to the dealers it runs at.
type DealerPromotion struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	DealerID    uint      `json:"dealer_id" gorm:"index;not null"`
	PromotionID uint      `json:"promotion_id" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
}
