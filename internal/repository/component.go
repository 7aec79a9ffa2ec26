package repository

import (
	"design-canvas-backend/internal/database/models"

	"gorm.io/gorm"
)

// ComponentRepository handles database operations for components
type ComponentRepository struct {
	db *gorm.DB
}

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// Create creates a new component
func (r *ComponentRepository) Create(component *models.Component) error {
	return r.db.Create(component).Error
}

// GetByID retrieves a component by ID
func (r *ComponentRepository) GetByID(id uint) (*models.Component, error) {
	var component models.Component
	err := r.db.First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// ListByFrame retrieves all components of a frame in insertion order
func (r *ComponentRepository) ListByFrame(frameID uint) ([]models.Component, error) {
	var components []models.Component
	err := r.db.Where("frame_id = ?", frameID).Order("id").Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// Update persists changes to a component
func (r *ComponentRepository) Update(component *models.Component) error {
	return r.db.Save(component).Error
}

// Delete removes a component. Reports whether a row was actually deleted.
func (r *ComponentRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Component{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
