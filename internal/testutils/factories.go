package testutils

import (
	"encoding/json"

	"design-canvas-backend/internal/database/models"
)

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		Name: "Test Project",
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	return project
}

// FrameFactory provides methods to create test Frame data
type FrameFactory struct{}

// Create creates a test Frame belonging to the given project
func (f *FrameFactory) Create(projectID uint) *models.Frame {
	return &models.Frame{
		ProjectID: projectID,
		Name:      "Test Frame",
	}
}

// WithName sets a custom name for the frame
func (f *FrameFactory) WithName(projectID uint, name string) *models.Frame {
	frame := f.Create(projectID)
	frame.Name = name
	return frame
}

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// Create creates a test Component on the given frame
func (f *ComponentFactory) Create(frameID uint) *models.Component {
	return &models.Component{
		FrameID:    frameID,
		Name:       "Test Component",
		Type:       "circle",
		X:          10,
		Y:          20,
		Width:      50,
		Height:     50,
		Properties: json.RawMessage(`{}`),
	}
}

// WithType sets a custom shape type for the component
func (f *ComponentFactory) WithType(frameID uint, shapeType string) *models.Component {
	component := f.Create(frameID)
	component.Type = shapeType
	return component
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	Project   *ProjectFactory
	Frame     *FrameFactory
	Component *ComponentFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:   &ProjectFactory{},
		Frame:     &FrameFactory{},
		Component: &ComponentFactory{},
	}
}
