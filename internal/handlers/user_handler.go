package handlers

import (
	"net/http"

	"dealer_manager/internal/models"
	"dealer_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		Username    string `json:"username" binding:"required"`
		Email       string `json:"email" binding:"required"`
		Password    string `json:"password" binding:"required"`
		FullName    string `json:"full_name"`
		PhoneNumber string `json:"phone_number"`
		Role        string `json:"role"`
		DealerID    uint   `json:"dealer_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	role := req.Role
	if role == "" {
		role = string(models.RoleStaff)
	}
	user := &models.User{
		Username:    req.Username,
		Email:       req.Email,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
		DealerID:    req.DealerID,
		IsActive:    true,
	}
	if err := h.userService.CreateUser(user, req.Password); err != nil {
		respondFailure(c, "Failed to create user")
		return
	}
	respondSuccess(c, "User created", user)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondFailure(c, "User not found")
		return
	}
	respondSuccess(c, "User found", user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	if dealerID, ok := queryID(c, "dealer_id"); ok {
		users, err := h.userService.GetUsersByDealer(dealerID)
		if err != nil {
			respondFailure(c, "Failed to list users")
			return
		}
		respondSuccess(c, "Users found", users)
		return
	}
	users, err := h.userService.GetAllUsers()
	if err != nil {
		respondFailure(c, "Failed to list users")
		return
	}
	respondSuccess(c, "Users found", users)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondFailure(c, "User not found")
		return
	}
	var req struct {
		Email       string `json:"email"`
		FullName    string `json:"full_name"`
		PhoneNumber string `json:"phone_number"`
		Role        string `json:"role"`
		DealerID    *uint  `json:"dealer_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.DealerID != nil {
		user.DealerID = *req.DealerID
	}
	if err := h.userService.UpdateUser(user); err != nil {
		respondFailure(c, "Failed to update user")
		return
	}
	respondSuccess(c, "User updated", user)
}

func (h *UserHandler) DeactivateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.userService.DeactivateUser(id); err != nil {
		respondFailure(c, "Failed to deactivate user")
		return
	}
	respondSuccess(c, "User deactivated", nil)
}
