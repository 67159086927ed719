package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint replies with. Business
// failures mostly keep HTTP 200 and signal through Status; only
// malformed requests and auth failures use 4xx codes.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func respondSuccess(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Status: "success", Message: message, Data: data})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Status: "error", Message: message})
}

func respondFailure(c *gin.Context, message string) {
	respondError(c, http.StatusOK, message)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// queryID reads an optional numeric query parameter.
func queryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
