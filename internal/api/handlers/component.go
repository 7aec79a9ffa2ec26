package handlers

import (
	"net/http"

	"design-canvas-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ComponentHandler handles HTTP requests for component operations
type ComponentHandler struct {
	componentService *service.ComponentService
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService *service.ComponentService) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
	}
}

// CreateComponent handles POST /api/components
// @Summary Create a new component
// @Description Create a component on an existing frame
// @Tags components
// @Accept json
// @Produce json
// @Param component body service.CreateComponentRequest true "Component data"
// @Success 200 {object} service.ComponentResponse "Successfully created component"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Frame not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	var req service.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	component, err := h.componentService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// GetComponent handles GET /api/components/:id
// @Summary Get component by ID
// @Tags components
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {object} service.ComponentResponse "Successfully retrieved component"
// @Failure 400 {object} ErrorResponse "Invalid component ID"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid component ID"})
		return
	}

	component, err := h.componentService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// ListFrameComponents handles GET /api/frames/:id/components
// @Summary List components of a frame
// @Tags components
// @Produce json
// @Param id path int true "Frame ID"
// @Success 200 {array} service.ComponentResponse "Components in insertion order"
// @Failure 400 {object} ErrorResponse "Invalid frame ID"
// @Failure 404 {object} ErrorResponse "Frame not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/frames/{id}/components [get]
func (h *ComponentHandler) ListFrameComponents(c *gin.Context) {
	frameID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid frame ID"})
		return
	}

	components, err := h.componentService.ListByFrame(frameID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, components)
}

// UpdateComponent handles PUT /api/components/:id
// @Summary Update component
// @Description Apply a partial update; omitted fields are left unchanged
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Component ID"
// @Param component body service.UpdateComponentRequest true "Updated component data"
// @Success 200 {object} service.ComponentResponse "Successfully updated component"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/components/{id} [put]
func (h *ComponentHandler) UpdateComponent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid component ID"})
		return
	}

	var req service.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	component, err := h.componentService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// DeleteComponent handles DELETE /api/components/:id
// @Summary Delete component
// @Tags components
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {object} MessageResponse "Successfully deleted component"
// @Failure 400 {object} ErrorResponse "Invalid component ID"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/components/{id} [delete]
func (h *ComponentHandler) DeleteComponent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid component ID"})
		return
	}

	if err := h.componentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Component deleted successfully"})
}
