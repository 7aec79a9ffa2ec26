package repository

import (
	"design-canvas-backend/internal/database/models"

	"gorm.io/gorm"
)

// FrameRepository handles database operations for frames
type FrameRepository struct {
	db *gorm.DB
}

// NewFrameRepository creates a new frame repository
func NewFrameRepository(db *gorm.DB) *FrameRepository {
	return &FrameRepository{db: db}
}

// Create creates a new frame
func (r *FrameRepository) Create(frame *models.Frame) error {
	return r.db.Create(frame).Error
}

// GetByID retrieves a frame with its components
func (r *FrameRepository) GetByID(id uint) (*models.Frame, error) {
	var frame models.Frame
	err := r.db.
		Preload("Components", func(db *gorm.DB) *gorm.DB { return db.Order("components.id") }).
		First(&frame, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &frame, nil
}

// List retrieves frames in insertion order with pagination. A non-nil
// projectID restricts the result to that project's frames.
func (r *FrameRepository) List(projectID *uint, skip, limit int) ([]models.Frame, error) {
	var frames []models.Frame
	query := r.db.
		Preload("Components", func(db *gorm.DB) *gorm.DB { return db.Order("components.id") }).
		Order("frames.id").Offset(skip).Limit(limit)
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	err := query.Find(&frames).Error
	if err != nil {
		return nil, err
	}
	return frames, nil
}

// Update persists changes to a frame
func (r *FrameRepository) Update(frame *models.Frame) error {
	return r.db.Save(frame).Error
}

// Delete removes a frame; the database cascades to its components.
// Reports whether a row was actually deleted.
func (r *FrameRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Frame{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

// Exists checks if a frame exists by ID
func (r *FrameRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Frame{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
