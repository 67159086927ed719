package handlers

import (
	"errors"
	"net/http"
	"strings"

	"dealer_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	tokenString, user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		respondFailure(c, "Login failed")
		return
	}

	respondSuccess(c, "Login successful", gin.H{
		"token": tokenString,
		"user":  user,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == "" || tokenString == header {
		respondError(c, http.StatusUnauthorized, "Missing bearer token")
		return
	}
	if err := h.authService.Logout(tokenString); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid token")
		return
	}
	respondSuccess(c, "Logged out", nil)
}
