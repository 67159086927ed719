package handlers

import (
	"net/http"

	"dealer_manager/internal/models"
	"dealer_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService services.VehicleService
}

func NewVehicleHandler(vehicleService services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

func (h *VehicleHandler) CreateModel(c *gin.Context) {
	var model models.VehicleModel
	if err := c.ShouldBindJSON(&model); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.vehicleService.CreateModel(&model); err != nil {
		respondFailure(c, "Failed to create model")
		return
	}
	respondSuccess(c, "Model created", model)
}

func (h *VehicleHandler) ListModels(c *gin.Context) {
	vehicleModels, err := h.vehicleService.GetActiveModels()
	if err != nil {
		respondFailure(c, "Failed to list models")
		return
	}
	respondSuccess(c, "Models found", vehicleModels)
}

func (h *VehicleHandler) DeactivateModel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.vehicleService.DeactivateModel(id); err != nil {
		respondFailure(c, "Failed to deactivate model")
		return
	}
	respondSuccess(c, "Model deactivated", nil)
}

func (h *VehicleHandler) CreateVariant(c *gin.Context) {
	var variant models.VehicleVariant
	if err := c.ShouldBindJSON(&variant); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.vehicleService.CreateVariant(&variant); err != nil {
		respondFailure(c, "Failed to create variant")
		return
	}
	respondSuccess(c, "Variant created", variant)
}

func (h *VehicleHandler) ListVariants(c *gin.Context) {
	modelID, ok := parseIDParam(c, "model_id")
	if !ok {
		return
	}
	variants, err := h.vehicleService.GetVariantsByModel(modelID)
	if err != nil {
		respondFailure(c, "Failed to list variants")
		return
	}
	respondSuccess(c, "Variants found", variants)
}

func (h *VehicleHandler) DeactivateVariant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.vehicleService.DeactivateVariant(id); err != nil {
		respondFailure(c, "Failed to deactivate variant")
		return
	}
	respondSuccess(c, "Variant deactivated", nil)
}

func (h *VehicleHandler) RegisterSerial(c *gin.Context) {
	var req struct {
		VariantID uint `json:"variant_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	serial, err := h.vehicleService.RegisterSerial(req.VariantID)
	if err != nil {
		respondFailure(c, "Failed to register serial")
		return
	}
	respondSuccess(c, "Serial registered", serial)
}

func (h *VehicleHandler) ListSerials(c *gin.Context) {
	variantID, ok := parseIDParam(c, "variant_id")
	if !ok {
		return
	}
	serials, err := h.vehicleService.GetSerialsByVariant(variantID)
	if err != nil {
		respondFailure(c, "Failed to list serials")
		return
	}
	respondSuccess(c, "Serials found", serials)
}
