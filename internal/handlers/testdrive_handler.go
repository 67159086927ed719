package handlers

import (
	"errors"
	"net/http"

	"dealer_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type TestDriveHandler struct {
	testDriveService services.TestDriveService
}

func NewTestDriveHandler(testDriveService services.TestDriveService) *TestDriveHandler {
	return &TestDriveHandler{testDriveService: testDriveService}
}

func (h *TestDriveHandler) Schedule(c *gin.Context) {
	var req struct {
		CustomerID    uint   `json:"customer_id" binding:"required"`
		VariantID     uint   `json:"variant_id" binding:"required"`
		StaffID       uint   `json:"staff_id" binding:"required"`
		ScheduledTime string `json:"scheduled_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	testDrive, err := h.testDriveService.Schedule(req.CustomerID, req.VariantID, req.StaffID, req.ScheduledTime)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidScheduleTime):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrSlotTaken):
			respondFailure(c, "Slot already booked")
		default:
			respondFailure(c, "Failed to schedule test drive")
		}
		return
	}
	respondSuccess(c, "Test drive scheduled", testDrive)
}

func (h *TestDriveHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.testDriveService.UpdateStatus(id, req.Status); err != nil {
		respondFailure(c, "Failed to update test drive")
		return
	}
	respondSuccess(c, "Test drive updated", nil)
}

func (h *TestDriveHandler) ListByStaff(c *gin.Context) {
	staffID, ok := parseIDParam(c, "staff_id")
	if !ok {
		return
	}
	testDrives, err := h.testDriveService.GetByStaff(staffID)
	if err != nil {
		respondFailure(c, "Failed to list test drives")
		return
	}
	respondSuccess(c, "Test drives found", testDrives)
}

func (h *TestDriveHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		return
	}
	testDrives, err := h.testDriveService.GetByCustomer(customerID)
	if err != nil {
		respondFailure(c, "Failed to list test drives")
		return
	}
	respondSuccess(c, "Test drives found", testDrives)
}
