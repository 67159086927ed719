package handlers

import (
	"errors"
	"net/http"

	"dealer_manager/internal/models"
	"dealer_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	promotionService services.PromotionService
}

func NewPromotionHandler(promotionService services.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var promotion models.Promotion
	if err := c.ShouldBindJSON(&promotion); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.promotionService.CreatePromotion(&promotion); err != nil {
		if errors.Is(err, services.ErrInvalidPromotion) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondFailure(c, "Failed to create promotion")
		return
	}
	respondSuccess(c, "Promotion created", promotion)
}

// ListPromotions returns every promotion, or only the ones currently
// active for a dealer when a dealer_id query parameter is given.
func (h *PromotionHandler) ListPromotions(c *gin.Context) {
	if dealerID, ok := queryID(c, "dealer_id"); ok {
		promotions, err := h.promotionService.GetActivePromotions(dealerID)
		if err != nil {
			respondFailure(c, "Failed to list active promotions")
			return
		}
		respondSuccess(c, "Active promotions found", promotions)
		return
	}
	promotions, err := h.promotionService.GetAllPromotions()
	if err != nil {
		respondFailure(c, "Failed to list promotions")
		return
	}
	respondSuccess(c, "Promotions found", promotions)
}

func (h *PromotionHandler) GetPromotion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	promotion, err := h.promotionService.GetPromotionByID(id)
	if err != nil {
		respondFailure(c, "Promotion not found")
		return
	}
	respondSuccess(c, "Promotion found", promotion)
}

func (h *PromotionHandler) UpdatePromotion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var promotion models.Promotion
	if err := c.ShouldBindJSON(&promotion); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	promotion.ID = id
	if err := h.promotionService.UpdatePromotion(&promotion); err != nil {
		if errors.Is(err, services.ErrInvalidPromotion) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondFailure(c, "Failed to update promotion")
		return
	}
	respondSuccess(c, "Promotion updated", promotion)
}

func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.promotionService.DeletePromotion(id); err != nil {
		respondFailure(c, "Failed to delete promotion")
		return
	}
	respondSuccess(c, "Promotion deleted", nil)
}

func (h *PromotionHandler) AssignToDealer(c *gin.Context) {
	var req struct {
		DealerID    uint `json:"dealer_id" binding:"required"`
		PromotionID uint `json:"promotion_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.promotionService.AssignToDealer(req.DealerID, req.PromotionID); err != nil {
		respondFailure(c, "Failed to assign promotion")
		return
	}
	respondSuccess(c, "Promotion assigned", nil)
}

