package repository

import (
	"dealer_manager/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	// CreateWithPlan inserts the payment and, when plan is non-nil, the
	// installment plan linked to it in the same transaction.
	CreateWithPlan(payment *models.Payment, plan *models.InstallmentPlan) error
	GetByID(id uint) (*models.Payment, error)
	GetByOrderID(orderID uint) (*models.Payment, error)
	ListByOrderID(orderID uint) ([]models.Payment, error)
	GetPlanByPaymentID(paymentID uint) (*models.InstallmentPlan, error)
	UpdatePlan(plan *models.InstallmentPlan) error
	GetAll() ([]models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateWithPlan(payment *models.Payment, plan *models.InstallmentPlan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		if plan == nil {
			return nil
		}
		plan.PaymentID = payment.ID
		return tx.Create(plan).Error
	})
}

func (r *paymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetByOrderID(orderID uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Where("order_id = ?", orderID).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) ListByOrderID(orderID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("order_id = ?", orderID).Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) GetPlanByPaymentID(paymentID uint) (*models.InstallmentPlan, error) {
	var plan models.InstallmentPlan
	err := r.db.Where("payment_id = ?", paymentID).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *paymentRepository) UpdatePlan(plan *models.InstallmentPlan) error {
	return r.db.Save(plan).Error
}

func (r *paymentRepository) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Find(&payments).Error
	return payments, err
}
