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

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      *repository.ProjectRepository
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// UpdateProjectRequest represents the request to update a project.
// Nil fields are left unchanged.
type UpdateProjectRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at"`
	Frames    []FrameResponse `json:"frames,omitempty"`
}

// Create creates a new project
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	project := &models.Project{
		Name: req.Name,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.toResponse(project, false), nil
}

// GetByID retrieves a project by ID including its frames
func (s *ProjectService) GetByID(id uint) (*ProjectResponse, error) {
	project, err := s.repo.GetWithFrames(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return s.toResponse(project, true), nil
}

// List retrieves projects with pagination
func (s *ProjectService) List(skip, limit int) ([]ProjectResponse, error) {
	skip, limit = normalizePage(skip, limit)

	projects, err := s.repo.List(skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *s.toResponse(&projects[i], false)
	}
	return responses, nil
}

// Update applies a partial update to a project
func (s *ProjectService) Update(id uint, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	now := time.Now()
	project.UpdatedAt = &now

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.toResponse(project, false), nil
}

// Delete deletes a project, cascading to its frames and components
func (s *ProjectService) Delete(id uint) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if !deleted {
		return apperrors.ErrProjectNotFound
	}

	logger.New().WithField("project_id", id).Info("project deleted with its frames and components")
	return nil
}

// toResponse converts a project model to response
func (s *ProjectService) toResponse(project *models.Project, withFrames bool) *ProjectResponse {
	resp := &ProjectResponse{
		ID:        project.ID,
		Name:      project.Name,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
	if withFrames {
		resp.Frames = make([]FrameResponse, len(project.Frames))
		for i := range project.Frames {
			resp.Frames[i] = *frameToResponse(&project.Frames[i])
		}
	}
	return resp
}

// normalizePage clamps pagination parameters to sane values
func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return skip, limit
}
