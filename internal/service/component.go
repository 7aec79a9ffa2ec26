package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"design-canvas-backend/internal/database/models"
	apperrors "design-canvas-backend/internal/errors"
	"design-canvas-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Geometry defaults applied when a create request omits the fields.
const (
	defaultWidth  = 100.0
	defaultHeight = 100.0
)

// ComponentService handles business logic for components
type ComponentService struct {
	repo      *repository.ComponentRepository
	frameRepo *repository.FrameRepository
	validator *validator.Validate
}

// NewComponentService creates a new component service
func NewComponentService(repo *repository.ComponentRepository, frameRepo *repository.FrameRepository, validator *validator.Validate) *ComponentService {
	return &ComponentService{
		repo:      repo,
		frameRepo: frameRepo,
		validator: validator,
	}
}

// CreateComponentRequest represents the request to create a component.
// Geometry fields default to x=0, y=0, width=100, height=100 when omitted;
// properties is an opaque JSON object the server never inspects.
type CreateComponentRequest struct {
	FrameID    uint            `json:"frame_id" validate:"required"`
	Name       string          `json:"name" validate:"required,min=1"`
	Type       string          `json:"type" validate:"required"`
	X          *float64        `json:"x"`
	Y          *float64        `json:"y"`
	Width      *float64        `json:"width"`
	Height     *float64        `json:"height"`
	Properties json.RawMessage `json:"properties" swaggertype:"object"`
}

// UpdateComponentRequest represents the request to update a component.
// Nil fields are left unchanged.
type UpdateComponentRequest struct {
	Name       *string         `json:"name" validate:"omitempty,min=1"`
	X          *float64        `json:"x"`
	Y          *float64        `json:"y"`
	Width      *float64        `json:"width"`
	Height     *float64        `json:"height"`
	Properties json.RawMessage `json:"properties" swaggertype:"object"`
}

// ComponentResponse represents the response for component operations
type ComponentResponse struct {
	ID         uint            `json:"id"`
	FrameID    uint            `json:"frame_id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Properties json.RawMessage `json:"properties" swaggertype:"object"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at"`
}

// Create creates a new component after verifying its frame exists
func (s *ComponentService) Create(req *CreateComponentRequest) (*ComponentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	exists, err := s.frameRepo.Exists(req.FrameID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify frame: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrFrameNotFound
	}

	component := &models.Component{
		FrameID:    req.FrameID,
		Name:       req.Name,
		Type:       req.Type,
		Width:      defaultWidth,
		Height:     defaultHeight,
		Properties: json.RawMessage(`{}`),
	}
	if req.X != nil {
		component.X = *req.X
	}
	if req.Y != nil {
		component.Y = *req.Y
	}
	if req.Width != nil {
		component.Width = *req.Width
	}
	if req.Height != nil {
		component.Height = *req.Height
	}
	if jsonPresent(req.Properties) {
		component.Properties = req.Properties
	}

	if err := s.repo.Create(component); err != nil {
		return nil, fmt.Errorf("failed to create component: %w", err)
	}

	return componentToResponse(component), nil
}

// GetByID retrieves a component by ID
func (s *ComponentService) GetByID(id uint) (*ComponentResponse, error) {
	component, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}

	return componentToResponse(component), nil
}

// ListByFrame retrieves the components of a frame after verifying it exists
func (s *ComponentService) ListByFrame(frameID uint) ([]ComponentResponse, error) {
	exists, err := s.frameRepo.Exists(frameID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify frame: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrFrameNotFound
	}

	components, err := s.repo.ListByFrame(frameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}

	responses := make([]ComponentResponse, len(components))
	for i := range components {
		responses[i] = *componentToResponse(&components[i])
	}
	return responses, nil
}

// Update applies a partial update to a component
func (s *ComponentService) Update(id uint, req *UpdateComponentRequest) (*ComponentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	component, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}

	if req.Name != nil {
		component.Name = *req.Name
	}
	if req.X != nil {
		component.X = *req.X
	}
	if req.Y != nil {
		component.Y = *req.Y
	}
	if req.Width != nil {
		component.Width = *req.Width
	}
	if req.Height != nil {
		component.Height = *req.Height
	}
	if jsonPresent(req.Properties) {
		component.Properties = req.Properties
	}
	now := time.Now()
	component.UpdatedAt = &now

	if err := s.repo.Update(component); err != nil {
		return nil, fmt.Errorf("failed to update component: %w", err)
	}

	return componentToResponse(component), nil
}

// Delete deletes a component
func (s *ComponentService) Delete(id uint) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete component: %w", err)
	}
	if !deleted {
		return apperrors.ErrComponentNotFound
	}
	return nil
}

// jsonPresent reports whether a raw message carries a value. A JSON null
// decodes to the non-nil literal "null" and is treated the same as an
// omitted field.
func jsonPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// componentToResponse converts a component model to response
func componentToResponse(component *models.Component) *ComponentResponse {
	properties := component.Properties
	if properties == nil {
		properties = json.RawMessage(`{}`)
	}
	return &ComponentResponse{
		ID:         component.ID,
		FrameID:    component.FrameID,
		Name:       component.Name,
		Type:       component.Type,
		X:          component.X,
		Y:          component.Y,
		Width:      component.Width,
		Height:     component.Height,
		Properties: properties,
		CreatedAt:  component.CreatedAt,
		UpdatedAt:  component.UpdatedAt,
	}
}
