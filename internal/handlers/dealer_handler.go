package handlers

import (
	"net/http"

	"dealer_manager/internal/models"
	"dealer_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type DealerHandler struct {
	dealerService services.DealerService
}

func NewDealerHandler(dealerService services.DealerService) *DealerHandler {
	return &DealerHandler{dealerService: dealerService}
}

func (h *DealerHandler) CreateDealer(c *gin.Context) {
	var dealer models.Dealer
	if err := c.ShouldBindJSON(&dealer); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if dealer.Name == "" {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}
	if err := h.dealerService.CreateDealer(&dealer); err != nil {
		respondFailure(c, "Failed to create dealer")
		return
	}
	respondSuccess(c, "Dealer created", dealer)
}

func (h *DealerHandler) GetDealer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	dealer, err := h.dealerService.GetDealerByID(id)
	if err != nil {
		respondFailure(c, "Dealer not found")
		return
	}
	respondSuccess(c, "Dealer found", dealer)
}

func (h *DealerHandler) ListDealers(c *gin.Context) {
	dealers, err := h.dealerService.GetAllDealers()
	if err != nil {
		respondFailure(c, "Failed to list dealers")
		return
	}
	respondSuccess(c, "Dealers found", dealers)
}

func (h *DealerHandler) UpdateDealer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var dealer models.Dealer
	if err := c.ShouldBindJSON(&dealer); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	dealer.ID = id
	if err := h.dealerService.UpdateDealer(&dealer); err != nil {
		respondFailure(c, "Failed to update dealer")
		return
	}
	respondSuccess(c, "Dealer updated", dealer)
}

func (h *DealerHandler) DeleteDealer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.dealerService.DeleteDealer(id); err != nil {
		respondFailure(c, "Failed to delete dealer")
		return
	}
	respondSuccess(c, "Dealer deleted", nil)
}
