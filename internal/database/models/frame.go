package models

import "time"

// Frame is a single canvas inside a project.
type Frame struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	ProjectID uint       `json:"project_id" gorm:"not null;index" validate:"required"`
	Name      string     `json:"name" gorm:"not null;index" validate:"required,min=1"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`

	// Relationships
	Project    Project     `json:"-" gorm:"foreignKey:ProjectID"`
	Components []Component `json:"components" gorm:"foreignKey:FrameID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Frame
func (Frame) TableName() string {
	return "frames"
}
