package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	FullName    string         `json:"full_name" gorm:"not null"`
	PhoneNumber string         `json:"phone_number"`
	Email       string         `json:"email"`
	Address     string         `json:"address" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
