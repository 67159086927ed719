package services

import (
	"errors"
	"log"
	"time"

	"dealer_manager/internal/models"
	"dealer_manager/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrPaymentExists   = errors.New("payment already exists for this order")
	ErrInvalidCustomer = errors.New("order has no valid customer")
)

const defaultTermMonths = 12

type InstallmentPlanInput struct {
	InterestRate float64 `json:"interest_rate"`
	TermMonths   int     `json:"term_months"`
	MonthlyPay   float64 `json:"monthly_pay"`
}

type PaymentService interface {
	CreatePayment(orderID uint, method string, planInput *InstallmentPlanInput) (*models.Payment, error)
	GetPaymentByOrder(orderID uint) (*models.Payment, error)
	GetAllPayments() ([]models.Payment, error)
}

type paymentService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	promoRepo   repository.PromotionRepository
	cache       DebtCache
}

func NewPaymentService(
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	promoRepo repository.PromotionRepository,
	cache DebtCache,
) PaymentService {
	return &paymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		promoRepo:   promoRepo,
		cache:       cache,
	}
}

// CreatePayment records the payment for an order: the total is the sum of
// quantity*unitPrice over the order's detail rows, discounted by the
// staff dealer's active promotions, and financed methods get an
// installment plan persisted in the same transaction. The duplicate
// check is read-then-write; it does not hold under two concurrent calls
// for the same order.
func (s *paymentService) CreatePayment(orderID uint, method string, planInput *InstallmentPlanInput) (*models.Payment, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.CustomerID == 0 {
		return nil, ErrInvalidCustomer
	}

	if _, err := s.paymentRepo.GetByOrderID(orderID); err == nil {
		return nil, ErrPaymentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	total, err := s.orderTotal(orderID)
	if err != nil {
		return nil, err
	}

	promotions, err := s.activePromotions(order.StaffID)
	if err != nil {
		return nil, err
	}
	total = applyPromotions(total, promotions)

	payment := &models.Payment{
		OrderID:     orderID,
		Method:      method,
		Amount:      total,
		PaymentDate: time.Now().Format(models.DateTimeLayout),
	}

	var plan *models.InstallmentPlan
	if method != models.PaymentMethodFull {
		plan = buildInstallmentPlan(total, planInput)
	}

	if err := s.paymentRepo.CreateWithPlan(payment, plan); err != nil {
		log.Printf("Failed to create payment for order %d: %v", orderID, err)
		return nil, err
	}
	payment.InstallmentPlan = plan

	if s.cache != nil {
		s.cache.InvalidateCustomerDebt(order.CustomerID)
	}
	return payment, nil
}

// orderTotal sums quantity*unitPrice across the order's detail rows.
// A parse failure on any row aborts the whole payment; no partial totals.
func (s *paymentService) orderTotal(orderID uint) (float64, error) {
	details, err := s.orderRepo.GetDetailsByOrderID(orderID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, detail := range details {
		qty, err := parseQuantity(detail.Quantity)
		if err != nil || qty <= 0 {
			return 0, ErrInvalidQuantity
		}
		total += float64(qty) * detail.UnitPrice
	}
	return total, nil
}

func (s *paymentService) activePromotions(staffID uint) ([]models.Promotion, error) {
	staff, err := s.userRepo.GetByID(staffID)
	if err != nil {
		return nil, err
	}
	today := time.Now().Format(models.DateLayout)
	return s.promoRepo.GetActiveByDealerID(staff.DealerID, today)
}

// buildInstallmentPlan fills defaults for a financed payment: term 12
// months (floored at 1) and monthly pay total/term when none supplied.
func buildInstallmentPlan(total float64, input *InstallmentPlanInput) *models.InstallmentPlan {
	plan := &models.InstallmentPlan{
		TermMonths: defaultTermMonths,
		Status:     string(models.PlanActive),
	}
	if input != nil {
		plan.InterestRate = input.InterestRate
		if input.TermMonths > 0 {
			plan.TermMonths = input.TermMonths
		}
		plan.MonthlyPay = input.MonthlyPay
	}
	if plan.TermMonths < 1 {
		plan.TermMonths = 1
	}
	if plan.MonthlyPay <= 0 {
		plan.MonthlyPay = total / float64(plan.TermMonths)
	}
	return plan
}

func (s *paymentService) GetPaymentByOrder(orderID uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if plan, err := s.paymentRepo.GetPlanByPaymentID(payment.ID); err == nil {
		payment.InstallmentPlan = plan
	}
	return payment, nil
}

func (s *paymentService) GetAllPayments() ([]models.Payment, error) {
	return s.paymentRepo.GetAll()
}
