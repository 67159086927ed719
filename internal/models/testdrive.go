package models

import (
	"time"

	"gorm.io/gorm"
)

type TestDrive struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	CustomerID    uint           `json:"customer_id" gorm:"index;not null"`
	VariantID     uint           `json:"variant_id" gorm:"not null"`
	StaffID       uint           `json:"staff_id" gorm:"index;not null"`
	ScheduledTime string         `json:"scheduled_time" gorm:"not null"`
	Status        string         `json:"status" gorm:"default:'Scheduled'"` // Scheduled, Completed, Cancelled
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type TestDriveStatus string

const (
	TestDriveScheduled TestDriveStatus = "Scheduled"
	TestDriveCompleted TestDriveStatus = "Completed"
	TestDriveCancelled TestDriveStatus = "Cancelled"
)
