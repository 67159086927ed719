package handlers

import (
	"errors"
	"net/http"

	"dealer_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input services.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	orderID, err := h.orderService.CreateOrder(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrVariantRequired):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondFailure(c, "Failed to create order")
		}
		return
	}
	respondSuccess(c, "Order created", gin.H{"order_id": orderID})
}

func (h *OrderHandler) ApproveOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Agree     bool    `json:"agree"`
		UnitPrice float64 `json:"unit_price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.orderService.ApproveCustomOrder(orderID, req.Agree, req.UnitPrice); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound),
			errors.Is(err, services.ErrNotCustomOrder),
			errors.Is(err, services.ErrNoPendingDetail),
			errors.Is(err, services.ErrConfirmationNotFound):
			respondFailure(c, err.Error())
		default:
			respondFailure(c, "Failed to approve order")
		}
		return
	}
	respondSuccess(c, "Order approval recorded", nil)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.GetOrderByID(orderID)
	if err != nil {
		respondFailure(c, "Order not found")
		return
	}
	details, err := h.orderService.GetOrderDetails(orderID)
	if err != nil {
		respondFailure(c, "Failed to load order details")
		return
	}
	respondSuccess(c, "Order found", gin.H{"order": order, "details": details})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	if customerID, ok := queryID(c, "customer_id"); ok {
		orders, err := h.orderService.GetOrdersByCustomer(customerID)
		if err != nil {
			respondFailure(c, "Failed to list orders")
			return
		}
		respondSuccess(c, "Orders found", orders)
		return
	}
	if staffID, ok := queryID(c, "staff_id"); ok {
		orders, err := h.orderService.GetOrdersByStaff(staffID)
		if err != nil {
			respondFailure(c, "Failed to list orders")
			return
		}
		respondSuccess(c, "Orders found", orders)
		return
	}
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		respondFailure(c, "Failed to list orders")
		return
	}
	respondSuccess(c, "Orders found", orders)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.orderService.CancelOrder(orderID); err != nil {
		respondFailure(c, "Failed to cancel order")
		return
	}
	respondSuccess(c, "Order cancelled", nil)
}
