package services

import (
	"log"
	"sort"

	"dealer_manager/internal/models"
	"dealer_manager/internal/repository"
)

// DebtCache caches per-customer debt snapshots. A nil cache is allowed
// and simply disables caching.
type DebtCache interface {
	GetCustomerDebt(customerID uint) (float64, bool)
	SetCustomerDebt(customerID uint, debt float64)
	InvalidateCustomerDebt(customerID uint)
}

// SaleSummary is one row of a sales report: a distinct customer with the
// running total, order count and latest order date over the range.
type SaleSummary struct {
	CustomerID      uint    `json:"customer_id"`
	CustomerName    string  `json:"customer_name,omitempty"`
	TotalAmount     float64 `json:"total_amount"`
	OrderCount      int     `json:"order_count"`
	LatestOrderDate string  `json:"latest_order_date"`
}

type ReportService interface {
	CustomerDebt(customerID uint) float64
	SalesByStaff(staffID uint, startDate, endDate string) ([]SaleSummary, error)
	SalesByDealer(dealerID uint, startDate, endDate string) ([]SaleSummary, error)
}

type reportService struct {
	orderRepo    repository.OrderRepository
	paymentRepo  repository.PaymentRepository
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	cache        DebtCache
}

func NewReportService(
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	cache DebtCache,
) ReportService {
	return &reportService{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		userRepo:     userRepo,
		customerRepo: customerRepo,
		cache:        cache,
	}
}

// CustomerDebt sums the unpaid balance across the customer's
// non-cancelled orders. Each order's remainder is floored at zero before
// summing, so overpayment on one order never offsets another. Returns 0
// rather than propagating unexpected errors.
func (s *reportService) CustomerDebt(customerID uint) float64 {
	if s.cache != nil {
		if debt, ok := s.cache.GetCustomerDebt(customerID); ok {
			return debt
		}
	}

	orders, err := s.orderRepo.GetByCustomerID(customerID)
	if err != nil {
		log.Printf("Failed to load orders for customer %d: %v", customerID, err)
		return 0
	}

	var debt float64
	for _, order := range orders {
		if order.Status == string(models.OrderCancelled) {
			continue
		}
		details, err := s.orderRepo.GetDetailsByOrderID(order.ID)
		if err != nil {
			log.Printf("Failed to load details for order %d: %v", order.ID, err)
			return 0
		}
		var total float64
		for _, detail := range details {
			qty, err := parseQuantity(detail.Quantity)
			if err != nil || qty <= 0 || detail.UnitPrice <= 0 {
				log.Printf("Skipping order detail %d: invalid quantity %q or price %v", detail.ID, detail.Quantity, detail.UnitPrice)
				continue
			}
			total += float64(qty) * detail.UnitPrice
		}

		payments, err := s.paymentRepo.ListByOrderID(order.ID)
		if err != nil {
			log.Printf("Failed to load payments for order %d: %v", order.ID, err)
			return 0
		}
		var paid float64
		for _, payment := range payments {
			if payment.Amount > 0 {
				paid += payment.Amount
			}
		}

		if remainder := total - paid; remainder > 0 {
			debt += remainder
		}
	}

	if s.cache != nil {
		s.cache.SetCustomerDebt(customerID, debt)
	}
	return debt
}

func (s *reportService) SalesByStaff(staffID uint, startDate, endDate string) ([]SaleSummary, error) {
	orders, err := s.orderRepo.GetByStaffID(staffID)
	if err != nil {
		return nil, err
	}
	return s.aggregateSales(orders, startDate, endDate), nil
}

func (s *reportService) SalesByDealer(dealerID uint, startDate, endDate string) ([]SaleSummary, error) {
	staff, err := s.userRepo.GetByDealerID(dealerID)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	for _, user := range staff {
		staffOrders, err := s.orderRepo.GetByStaffID(user.ID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, staffOrders...)
	}
	return s.aggregateSales(orders, startDate, endDate), nil
}

// aggregateSales buckets in-range orders per customer. The date range is
// inclusive and compared lexicographically on the stored timestamp
// format. Orders missing their detail row are skipped silently;
// unparsable quantities are logged and skipped.
func (s *reportService) aggregateSales(orders []models.Order, startDate, endDate string) []SaleSummary {
	summaries := make(map[uint]*SaleSummary)
	for _, order := range orders {
		if order.OrderDate < startDate || order.OrderDate > endDate {
			continue
		}
		details, err := s.orderRepo.GetDetailsByOrderID(order.ID)
		if err != nil {
			log.Printf("Failed to load details for order %d: %v", order.ID, err)
			continue
		}
		if len(details) == 0 {
			continue
		}
		detail := details[0]
		qty, err := parseQuantity(detail.Quantity)
		if err != nil {
			log.Printf("Skipping order %d: invalid quantity %q", order.ID, detail.Quantity)
			continue
		}
		amount := float64(qty) * detail.UnitPrice

		summary, ok := summaries[order.CustomerID]
		if !ok {
			summary = &SaleSummary{CustomerID: order.CustomerID}
			summaries[order.CustomerID] = summary
		}
		summary.TotalAmount += amount
		summary.OrderCount++
		if order.OrderDate > summary.LatestOrderDate {
			summary.LatestOrderDate = order.OrderDate
		}
	}

	result := make([]SaleSummary, 0, len(summaries))
	for _, summary := range summaries {
		if summary.CustomerID != 0 {
			if customer, err := s.customerRepo.GetByID(summary.CustomerID); err == nil {
				summary.CustomerName = customer.FullName
			}
		}
		result = append(result, *summary)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CustomerID < result[j].CustomerID
	})
	return result
}
