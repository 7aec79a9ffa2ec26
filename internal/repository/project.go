package repository

import (
	"design-canvas-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetWithFrames retrieves a project with its frames and their components
func (r *ProjectRepository) GetWithFrames(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Frames", func(db *gorm.DB) *gorm.DB { return db.Order("frames.id") }).
		Preload("Frames.Components", func(db *gorm.DB) *gorm.DB { return db.Order("components.id") }).
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves projects in insertion order with pagination
func (r *ProjectRepository) List(skip, limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("id").Offset(skip).Limit(limit).Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update persists changes to a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project; the database cascades to frames and components.
// Reports whether a row was actually deleted.
func (r *ProjectRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

// Exists checks if a project exists by ID
func (r *ProjectRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
