package handlers

import (
	"net/http"

	"dealer_manager/internal/models"
	"dealer_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if customer.FullName == "" {
		respondError(c, http.StatusBadRequest, "full_name is required")
		return
	}
	if err := h.customerService.CreateCustomer(&customer); err != nil {
		respondFailure(c, "Failed to create customer")
		return
	}
	respondSuccess(c, "Customer created", customer)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	customer, err := h.customerService.GetCustomerByID(id)
	if err != nil {
		respondFailure(c, "Customer not found")
		return
	}
	respondSuccess(c, "Customer found", customer)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	if phone := c.Query("phone"); phone != "" {
		customer, err := h.customerService.GetCustomerByPhone(phone)
		if err != nil {
			respondFailure(c, "Customer not found")
			return
		}
		respondSuccess(c, "Customer found", customer)
		return
	}
	customers, err := h.customerService.GetAllCustomers()
	if err != nil {
		respondFailure(c, "Failed to list customers")
		return
	}
	respondSuccess(c, "Customers found", customers)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	customer.ID = id
	if err := h.customerService.UpdateCustomer(&customer); err != nil {
		respondFailure(c, "Failed to update customer")
		return
	}
	respondSuccess(c, "Customer updated", customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.customerService.DeleteCustomer(id); err != nil {
		respondFailure(c, "Failed to delete customer")
		return
	}
	respondSuccess(c, "Customer deleted", nil)
}
