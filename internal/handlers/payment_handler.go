package handlers

import (
	"errors"
	"net/http"

	"dealer_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req struct {
		OrderID uint                           `json:"order_id" binding:"required"`
		Method  string                         `json:"method" binding:"required"`
		Plan    *services.InstallmentPlanInput `json:"installment_plan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	payment, err := h.paymentService.CreatePayment(req.OrderID, req.Method, req.Plan)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentExists):
			respondFailure(c, "Payment already exists")
		case errors.Is(err, services.ErrOrderNotFound),
			errors.Is(err, services.ErrInvalidCustomer),
			errors.Is(err, services.ErrInvalidQuantity):
			respondFailure(c, err.Error())
		default:
			respondFailure(c, "Failed to create payment")
		}
		return
	}
	respondSuccess(c, "Payment created", payment)
}

func (h *PaymentHandler) GetPaymentByOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order_id")
	if !ok {
		return
	}
	payment, err := h.paymentService.GetPaymentByOrder(orderID)
	if err != nil {
		respondFailure(c, "Payment not found")
		return
	}
	respondSuccess(c, "Payment found", payment)
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentService.GetAllPayments()
	if err != nil {
		respondFailure(c, "Failed to list payments")
		return
	}
	respondSuccess(c, "Payments found", payments)
}
