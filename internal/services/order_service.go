package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"dealer_manager/internal/models"
	"dealer_manager/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrVariantRequired      = errors.New("standard orders require a vehicle variant")
	ErrNotCustomOrder       = errors.New("order is not a custom order")
	ErrNoPendingDetail      = errors.New("order has no detail awaiting approval")
	ErrConfirmationNotFound = errors.New("confirmation not found for order detail")
)

type CreateOrderInput struct {
	CustomerID uint    `json:"customer_id"`
	StaffID    uint    `json:"staff_id"`
	ModelID    uint    `json:"model_id"`
	VariantID  uint    `json:"variant_id"`
	Quantity   string  `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Status     string  `json:"status"`
	IsCustom   bool    `json:"is_custom"`
}

type OrderService interface {
	CreateOrder(input CreateOrderInput) (uint, error)
	ApproveCustomOrder(orderID uint, agree bool, unitPrice float64) error
	GetOrderByID(id uint) (*models.Order, error)
	GetOrderDetails(orderID uint) ([]models.OrderDetail, error)
	GetOrdersByCustomer(customerID uint) ([]models.Order, error)
	GetOrdersByStaff(staffID uint) ([]models.Order, error)
	GetAllOrders() ([]models.Order, error)
	CancelOrder(id uint) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	vehicleRepo repository.VehicleRepository
}

func NewOrderService(orderRepo repository.OrderRepository, vehicleRepo repository.VehicleRepository) OrderService {
	return &orderService{orderRepo: orderRepo, vehicleRepo: vehicleRepo}
}

// CreateOrder builds an order and its single detail in one transaction.
// Standard orders allocate a fresh serial under the chosen variant; custom
// orders leave the serial unset and open a pending confirmation.
func (s *orderService) CreateOrder(input CreateOrderInput) (uint, error) {
	qty, err := parseQuantity(input.Quantity)
	if err != nil || qty <= 0 {
		return 0, ErrInvalidQuantity
	}

	unitPrice, err := s.resolveUnitPrice(input)
	if err != nil {
		return 0, err
	}

	status := input.Status
	if status == "" {
		status = string(models.OrderPending)
	}

	order := &models.Order{
		CustomerID: input.CustomerID,
		StaffID:    input.StaffID,
		ModelID:    input.ModelID,
		OrderDate:  time.Now().Format(models.DateTimeLayout),
		Status:     status,
		IsCustom:   input.IsCustom,
	}
	detail := &models.OrderDetail{
		Quantity:  strconv.Itoa(qty),
		UnitPrice: unitPrice,
	}

	if input.IsCustom {
		confirmation := &models.Confirmation{
			Agreement:   string(models.AgreementPending),
			CreatedDate: time.Now().Format(models.DateTimeLayout),
		}
		if err := s.orderRepo.CreateCustom(order, detail, confirmation); err != nil {
			log.Printf("Failed to create custom order: %v", err)
			return 0, err
		}
		return order.ID, nil
	}

	if input.VariantID == 0 {
		return 0, ErrVariantRequired
	}
	serial := &models.VehicleSerial{
		SerialNumber: newSerialNumber(),
		VariantID:    input.VariantID,
	}
	if err := s.orderRepo.CreateStandard(order, serial, detail); err != nil {
		log.Printf("Failed to create order: %v", err)
		return 0, err
	}
	return order.ID, nil
}

// resolveUnitPrice falls back to the variant price, then the model list
// price, when the caller does not supply one.
func (s *orderService) resolveUnitPrice(input CreateOrderInput) (float64, error) {
	if input.UnitPrice > 0 {
		return input.UnitPrice, nil
	}
	if input.VariantID != 0 {
		variant, err := s.vehicleRepo.GetVariantByID(input.VariantID)
		if err != nil {
			return 0, err
		}
		return variant.Price, nil
	}
	model, err := s.vehicleRepo.GetModelByID(input.ModelID)
	if err != nil {
		return 0, err
	}
	return model.ListPrice, nil
}

// ApproveCustomOrder resolves a pending custom order. On agree a new
// active variant is created at the manager-set price, a serial is
// generated under it and assigned to the detail, and the confirmation is
// flipped to Agree, all in one transaction. On disagree only the
// confirmation changes; the detail's serial stays unset for good.
func (s *orderService) ApproveCustomOrder(orderID uint, agree bool, unitPrice float64) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if !order.IsCustom {
		return ErrNotCustomOrder
	}

	detail, err := s.orderRepo.GetPendingDetail(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoPendingDetail
		}
		return err
	}
	confirmation, err := s.orderRepo.GetConfirmationByDetailID(detail.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrConfirmationNotFound
		}
		return err
	}

	if !agree {
		confirmation.Agreement = string(models.AgreementDisagree)
		if err := s.orderRepo.UpdateConfirmation(confirmation); err != nil {
			log.Printf("Failed to reject custom order %d: %v", orderID, err)
			return err
		}
		return nil
	}

	variant := &models.VehicleVariant{
		ModelID:     order.ModelID,
		VersionName: fmt.Sprintf("Custom Order %d", order.ID),
		Price:       unitPrice,
		IsActive:    true,
	}
	serial := &models.VehicleSerial{SerialNumber: newSerialNumber()}
	confirmation.Agreement = string(models.AgreementAgree)

	if err := s.orderRepo.Fulfill(variant, serial, detail, confirmation); err != nil {
		log.Printf("Failed to approve custom order %d: %v", orderID, err)
		return err
	}
	return nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetOrderDetails(orderID uint) ([]models.OrderDetail, error) {
	return s.orderRepo.GetDetailsByOrderID(orderID)
}

func (s *orderService) GetOrdersByCustomer(customerID uint) ([]models.Order, error) {
	return s.orderRepo.GetByCustomerID(customerID)
}

func (s *orderService) GetOrdersByStaff(staffID uint) ([]models.Order, error) {
	return s.orderRepo.GetByStaffID(staffID)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) CancelOrder(id uint) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	order.Status = string(models.OrderCancelled)
	return s.orderRepo.Update(order)
}
