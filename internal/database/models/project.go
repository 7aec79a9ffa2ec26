package models

import "time"

// Project is the top level of the canvas hierarchy. Deleting a project
// removes its frames and, through them, their components.
type Project struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"not null;index" validate:"required,min=1"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`

	// Relationships
	Frames []Frame `json:"frames,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
