package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentMethodFull is pay-in-full; any other method is financed and
// carries an installment plan.
const PaymentMethodFull = "TT"

type Payment struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	OrderID     uint           `json:"order_id" gorm:"index;not null"`
	Method      string         `json:"method" gorm:"not null"`
	Amount      float64        `json:"amount" gorm:"not null"`
	PaymentDate string         `json:"payment_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	InstallmentPlan *InstallmentPlan `json:"installment_plan,omitempty" gorm:"-"`
}

type InstallmentPlan struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	PaymentID    uint      `json:"payment_id" gorm:"index;not null"`
	InterestRate float64   `json:"interest_rate"`
	TermMonths   int       `json:"term_months" gorm:"not null"`
	MonthlyPay   float64   `json:"monthly_pay" gorm:"not null"`
	Status       string    `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, PAID, OVERDUE
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PlanStatus string

const (
	PlanActive  PlanStatus = "ACTIVE"
	PlanPaid    PlanStatus = "PAID"
	PlanOverdue PlanStatus = "OVERDUE"
)
