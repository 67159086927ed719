package handlers

import (
	"net/http"

	"dealer_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) CustomerDebt(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		return
	}
	debt := h.reportService.CustomerDebt(customerID)
	respondSuccess(c, "Debt computed", gin.H{
		"customer_id": customerID,
		"debt":        debt,
	})
}

func (h *ReportHandler) SalesByStaff(c *gin.Context) {
	staffID, ok := parseIDParam(c, "staff_id")
	if !ok {
		return
	}
	startDate, endDate, ok := dateRange(c)
	if !ok {
		return
	}
	summaries, err := h.reportService.SalesByStaff(staffID, startDate, endDate)
	if err != nil {
		respondFailure(c, "Failed to aggregate sales")
		return
	}
	respondSuccess(c, "Sales aggregated", summaries)
}

func (h *ReportHandler) SalesByDealer(c *gin.Context) {
	dealerID, ok := parseIDParam(c, "dealer_id")
	if !ok {
		return
	}
	startDate, endDate, ok := dateRange(c)
	if !ok {
		return
	}
	summaries, err := h.reportService.SalesByDealer(dealerID, startDate, endDate)
	if err != nil {
		respondFailure(c, "Failed to aggregate sales")
		return
	}
	respondSuccess(c, "Sales aggregated", summaries)
}

func dateRange(c *gin.Context) (string, string, bool) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		respondError(c, http.StatusBadRequest, "start_date and end_date are required")
		return "", "", false
	}
	return startDate, endDate, true
}
