package service

import (
	"errors"
	"fmt"
	"time"

	"design-canvas-backend/internal/database/models"
	apperrors "design-canvas-backend/internal/errors"
	"design-canvas-backend/internal/logger"
	"design-canvas-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// FrameService handles business logic for frames
type FrameService struct {
	repo        *repository.FrameRepository
	projectRepo *repository.ProjectRepository
	validator   *validator.Validate
}

// NewFrameService creates a new frame service
func NewFrameService(repo *repository.FrameRepository, projectRepo *repository.ProjectRepository, validator *validator.Validate) *FrameService {
	return &FrameService{
		repo:        repo,
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// CreateFrameRequest represents the request to create a frame
type CreateFrameRequest struct {
	Name      string `json:"name" validate:"required,min=1"`
	ProjectID uint   `json:"project_id" validate:"required"`
}

// UpdateFrameRequest represents the request to update a frame.
// Nil fields are left unchanged.
type UpdateFrameRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

// FrameResponse represents the response for frame operations
type FrameResponse struct {
	ID         uint                `json:"id"`
	ProjectID  uint                `json:"project_id"`
	Name       string              `json:"name"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  *time.Time          `json:"updated_at"`
	Components []ComponentResponse `json:"components"`
}

// Create creates a new frame after verifying its project exists
func (s *FrameService) Create(req *CreateFrameRequest) (*FrameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	exists, err := s.projectRepo.Exists(req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrProjectNotFound
	}

	frame := &models.Frame{
		Name:      req.Name,
		ProjectID: req.ProjectID,
	}

	if err := s.repo.Create(frame); err != nil {
		return nil, fmt.Errorf("failed to create frame: %w", err)
	}

	return frameToResponse(frame), nil
}

// GetByID retrieves a frame by ID including its components
func (s *FrameService) GetByID(id uint) (*FrameResponse, error) {
	frame, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFrameNotFound
		}
		return nil, fmt.Errorf("failed to get frame: %w", err)
	}

	return frameToResponse(frame), nil
}

// List retrieves frames with pagination, optionally filtered by project
func (s *FrameService) List(projectID *uint, skip, limit int) ([]FrameResponse, error) {
	skip, limit = normalizePage(skip, limit)

	frames, err := s.repo.List(projectID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list frames: %w", err)
	}

	responses := make([]FrameResponse, len(frames))
	for i := range frames {
		responses[i] = *frameToResponse(&frames[i])
	}
	return responses, nil
}

// Update applies a partial update to a frame
func (s *FrameService) Update(id uint, req *UpdateFrameRequest) (*FrameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	frame, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFrameNotFound
		}
		return nil, fmt.Errorf("failed to get frame: %w", err)
	}

	if req.Name != nil {
		frame.Name = *req.Name
	}
	now := time.Now()
	frame.UpdatedAt = &now

	if err := s.repo.Update(frame); err != nil {
		return nil, fmt.Errorf("failed to update frame: %w", err)
	}

	return frameToResponse(frame), nil
}

// Delete deletes a frame, cascading to its components
func (s *FrameService) Delete(id uint) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete frame: %w", err)
	}
	if !deleted {
		return apperrors.ErrFrameNotFound
	}

	logger.New().WithField("frame_id", id).Info("frame deleted with its components")
	return nil
}

// frameToResponse converts a frame model to response. The components
// slice is always present in the payload, empty when the frame has none.
func frameToResponse(frame *models.Frame) *FrameResponse {
	components := make([]ComponentResponse, len(frame.Components))
	for i := range frame.Components {
		components[i] = *componentToResponse(&frame.Components[i])
	}
	return &FrameResponse{
		ID:         frame.ID,
		ProjectID:  frame.ProjectID,
		Name:       frame.Name,
		CreatedAt:  frame.CreatedAt,
		UpdatedAt:  frame.UpdatedAt,
		Components: components,
	}
}
