package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database,omitempty"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Detail string `json:"detail" example:"Project not found"`
}

// MessageResponse represents a confirmation message response
type MessageResponse struct {
	Message string `json:"message" example:"Frame deleted successfully"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Liveness probe including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Router /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:  "healthy",
		Service: "design-canvas-api",
	}

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.Ping() != nil {
		response.Database = "unreachable"
	} else {
		response.Database = "healthy"
	}

	c.JSON(http.StatusOK, response)
}
