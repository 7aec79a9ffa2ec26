package handlers

import (
	"net/http"
	"strconv"

	"design-canvas-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FrameHandler handles HTTP requests for frame operations
type FrameHandler struct {
	frameService *service.FrameService
}

// NewFrameHandler creates a new frame handler
func NewFrameHandler(frameService *service.FrameService) *FrameHandler {
	return &FrameHandler{
		frameService: frameService,
	}
}

// CreateFrame handles POST /api/frames
// @Summary Create a new frame
// @Description Create a frame inside an existing project
// @Tags frames
// @Accept json
// @Produce json
// @Param frame body service.CreateFrameRequest true "Frame data"
// @Success 200 {object} service.FrameResponse "Successfully created frame"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/frames [post]
func (h *FrameHandler) CreateFrame(c *gin.Context) {
	var req service.CreateFrameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	frame, err := h.frameService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, frame)
}

// ListFrames handles GET /api/frames
// @Summary List frames
// @Tags frames
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Param project_id query int false "Restrict to one project"
// @Success 200 {array} service.FrameResponse "Frames in insertion order"
// @Failure 400 {object} ErrorResponse "Invalid project_id filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/frames [get]
func (h *FrameHandler) ListFrames(c *gin.Context) {
	skip, limit := parsePagination(c)

	var projectID *uint
	if raw := c.Query("project_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid project_id filter"})
			return
		}
		id := uint(parsed)
		projectID = &id
	}

	frames, err := h.frameService.List(projectID, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, frames)
}

// GetFrame handles GET /api/frames/:id
// @Summary Get frame by ID
// @Description Get a frame including its components
// @Tags frames
// @Produce json
// @Param id path int true "Frame ID"
// @Success 200 {object} service.FrameResponse "Successfully retrieved frame"
// @Failure 400 {object} ErrorResponse "Invalid frame ID"
// @Failure 404 {object} ErrorResponse "Frame not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/frames/{id} [get]
func (h *FrameHandler) GetFrame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid frame ID"})
		return
	}

	frame, err := h.frameService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, frame)
}

// UpdateFrame handles PUT /api/frames/:id
// @Summary Update frame
// @Description Apply a partial update; omitted fields are left unchanged
// @Tags frames
// @Accept json
// @Produce json
// @Param id path int true "Frame ID"
// @Param frame body service.UpdateFrameRequest true "Updated frame data"
// @Success 200 {object} service.FrameResponse "Successfully updated frame"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Frame not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/frames/{id} [put]
func (h *FrameHandler) UpdateFrame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid frame ID"})
		return
	}

	var req service.UpdateFrameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	frame, err := h.frameService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, frame)
}

// DeleteFrame handles DELETE /api/frames/:id
// @Summary Delete frame
// @Description Delete a frame and, through cascade, its components
// @Tags frames
// @Produce json
// @Param id path int true "Frame ID"
// @Success 200 {object} MessageResponse "Successfully deleted frame"
// @Failure 400 {object} ErrorResponse "Invalid frame ID"
// @Failure 404 {object} ErrorResponse "Frame not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/frames/{id} [delete]
func (h *FrameHandler) DeleteFrame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid frame ID"})
		return
	}

	if err := h.frameService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Frame deleted successfully"})
}
