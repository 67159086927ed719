package models

import (
	"time"

	"gorm.io/gorm"
)

// Timestamp layouts used by orders, payments and promotions. Order dates
// are stored as strings in this layout so date-range filters can compare
// lexicographically.
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
)

type Order struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	CustomerID uint           `json:"customer_id"` // 0 = dealer-initiated
	StaffID    uint           `json:"staff_id" gorm:"index;not null"`
	ModelID    uint           `json:"model_id" gorm:"not null"`
	OrderDate  string         `json:"order_date" gorm:"not null"`
	Status     string         `json:"status" gorm:"default:'Pending'"`
	IsCustom   bool           `json:"is_custom" gorm:"default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderApproved  OrderStatus = "Approved"
	OrderCancelled OrderStatus = "Cancelled"
)

// OrderDetail is the single line item of an order. Quantity is stored as
// text and parsed at the point of use; a nil SerialID means the order is
// awaiting fulfillment or approval.
type OrderDetail struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OrderID   uint           `json:"order_id" gorm:"index;not null"`
	SerialID  *string        `json:"serial_id"`
	Quantity  string         `json:"quantity" gorm:"not null"`
	UnitPrice float64        `json:"unit_price" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// Confirmation is the manual-pricing approval gate created for custom
// orders only.
type Confirmation struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OrderDetailID uint      `json:"order_detail_id" gorm:"index;not null"`
	Agreement     string    `json:"agreement" gorm:"default:'Pending'"` // Pending, Agree, Disagree
	CreatedDate   string    `json:"created_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AgreementStatus string

const (
	AgreementPending  AgreementStatus = "Pending"
	AgreementAgree    AgreementStatus = "Agree"
	AgreementDisagree AgreementStatus = "Disagree"
)
