package repository

import (
	"dealer_manager/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	// CreateStandard inserts the order, a fresh serial for the chosen
	// variant and the order detail referencing it, all in one transaction.
	CreateStandard(order *models.Order, serial *models.VehicleSerial, detail *models.OrderDetail) error
	// CreateCustom inserts the order, a detail with no serial and a
	// pending confirmation referencing the detail, all in one transaction.
	CreateCustom(order *models.Order, detail *models.OrderDetail, confirmation *models.Confirmation) error
	// Fulfill resolves an approved custom order: new variant, new serial
	// bound to it, detail pointed at the serial and the confirmation
	// flipped, all in one transaction.
	Fulfill(variant *models.VehicleVariant, serial *models.VehicleSerial, detail *models.OrderDetail, confirmation *models.Confirmation) error

	GetByID(id uint) (*models.Order, error)
	GetByCustomerID(customerID uint) ([]models.Order, error)
	GetByStaffID(staffID uint) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	Update(order *models.Order) error

	GetDetailsByOrderID(orderID uint) ([]models.OrderDetail, error)
	GetPendingDetail(orderID uint) (*models.OrderDetail, error)
	GetConfirmationByDetailID(detailID uint) (*models.Confirmation, error)
	UpdateConfirmation(confirmation *models.Confirmation) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateStandard(order *models.Order, serial *models.VehicleSerial, detail *models.OrderDetail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if err := tx.Create(serial).Error; err != nil {
			return err
		}
		detail.OrderID = order.ID
		detail.SerialID = &serial.SerialNumber
		return tx.Create(detail).Error
	})
}

func (r *orderRepository) CreateCustom(order *models.Order, detail *models.OrderDetail, confirmation *models.Confirmation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		detail.OrderID = order.ID
		detail.SerialID = nil
		if err := tx.Create(detail).Error; err != nil {
			return err
		}
		confirmation.OrderDetailID = detail.ID
		return tx.Create(confirmation).Error
	})
}

func (r *orderRepository) Fulfill(variant *models.VehicleVariant, serial *models.VehicleSerial, detail *models.OrderDetail, confirmation *models.Confirmation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(variant).Error; err != nil {
			return err
		}
		serial.VariantID = variant.ID
		if err := tx.Create(serial).Error; err != nil {
			return err
		}
		detail.SerialID = &serial.SerialNumber
		if err := tx.Save(detail).Error; err != nil {
			return err
		}
		return tx.Save(confirmation).Error
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("customer_id = ?", customerID).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByStaffID(staffID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("staff_id = ?", staffID).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) GetDetailsByOrderID(orderID uint) ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	err := r.db.Where("order_id = ?", orderID).Find(&details).Error
	return details, err
}

func (r *orderRepository) GetPendingDetail(orderID uint) (*models.OrderDetail, error) {
	var detail models.OrderDetail
	err := r.db.Where("order_id = ? AND serial_id IS NULL", orderID).First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *orderRepository) GetConfirmationByDetailID(detailID uint) (*models.Confirmation, error) {
	var confirmation models.Confirmation
	err := r.db.Where("order_detail_id = ?", detailID).First(&confirmation).Error
	if err != nil {
		return nil, err
	}
	return &confirmation, nil
}

func (r *orderRepository) UpdateConfirmation(confirmation *models.Confirmation) error {
	return r.db.Save(confirmation).Error
}
