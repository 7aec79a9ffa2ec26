package models

import (
	"encoding/json"
	"time"
)

// Component is a shape placed on a frame: circle, triangle, rectangle or
// connection. The type column is free text on purpose; the canvas editor
// ships new shape kinds without a schema change.
//
// The geometry columns carry no gorm default tags: GORM substitutes a
// default-tag value for any zero-valued field on insert, which would turn
// an explicit width of 0 into 100. The service fills in 0/0/100/100 for
// omitted fields before the row is written.
type Component struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	FrameID    uint            `json:"frame_id" gorm:"not null;index" validate:"required"`
	Name       string          `json:"name" gorm:"not null" validate:"required,min=1"`
	Type       string          `json:"type" gorm:"not null" validate:"required"`
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Properties json.RawMessage `json:"properties" gorm:"type:jsonb;default:'{}'"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at" gorm:"autoUpdateTime:false"`

	// Relationships
	Frame Frame `json:"-" gorm:"foreignKey:FrameID"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}
