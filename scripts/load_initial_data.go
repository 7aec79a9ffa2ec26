package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"design-canvas-backend/internal/config"
	"design-canvas-backend/internal/database"
	"design-canvas-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed structures mirror the canvas hierarchy: projects own frames,
// frames own components.
type ProjectData struct {
	Name   string      `yaml:"name"`
	Frames []FrameData `yaml:"frames,omitempty"`
}

type FrameData struct {
	Name       string          `yaml:"name"`
	Components []ComponentData `yaml:"components,omitempty"`
}

type ComponentData struct {
	Name       string                 `yaml:"name"`
	Type       string                 `yaml:"type"`
	X          float64                `yaml:"x"`
	Y          float64                `yaml:"y"`
	Width      float64                `yaml:"width"`
	Height     float64                `yaml:"height"`
	Properties map[string]interface{} `yaml:"properties,omitempty"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	log.Println("🚀 Loading initial canvas data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	var createdProjects, createdFrames, createdComponents, skipped int
	for _, projectData := range projects {
		project, created, err := createProject(db, projectData)
		if err != nil {
			return fmt.Errorf("failed to create project %q: %w", projectData.Name, err)
		}
		if !created {
			skipped++
			continue
		}
		createdProjects++

		for _, frameData := range projectData.Frames {
			frame, err := createFrame(db, project.ID, frameData)
			if err != nil {
				return fmt.Errorf("failed to create frame %q: %w", frameData.Name, err)
			}
			createdFrames++

			for _, componentData := range frameData.Components {
				if err := createComponent(db, frame.ID, componentData); err != nil {
					return fmt.Errorf("failed to create component %q: %w", componentData.Name, err)
				}
				createdComponents++
			}
		}
	}

	log.Printf("Created %d projects, %d frames, %d components (%d projects already present)",
		createdProjects, createdFrames, createdComponents, skipped)
	return nil
}

// loadProjects collects project definitions from every YAML file under dataDir.
func loadProjects(dataDir string) ([]ProjectData, error) {
	var projects []ProjectData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var file ProjectsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		projects = append(projects, file.Projects...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// createProject inserts a project unless one with the same name already
// exists, which keeps reruns idempotent.
func createProject(db *gorm.DB, data ProjectData) (*models.Project, bool, error) {
	var existing models.Project
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	project := &models.Project{Name: data.Name}
	if err := db.Create(project).Error; err != nil {
		return nil, false, err
	}
	return project, true, nil
}

func createFrame(db *gorm.DB, projectID uint, data FrameData) (*models.Frame, error) {
	frame := &models.Frame{
		ProjectID: projectID,
		Name:      data.Name,
	}
	if err := db.Create(frame).Error; err != nil {
		return nil, err
	}
	return frame, nil
}

func createComponent(db *gorm.DB, frameID uint, data ComponentData) error {
	properties := json.RawMessage(`{}`)
	if data.Properties != nil {
		encoded, err := json.Marshal(data.Properties)
		if err != nil {
			return fmt.Errorf("failed to encode properties: %w", err)
		}
		properties = encoded
	}

	width := data.Width
	if width == 0 {
		width = 100
	}
	height := data.Height
	if height == 0 {
		height = 100
	}

	component := &models.Component{
		FrameID:    frameID,
		Name:       data.Name,
		Type:       data.Type,
		X:          data.X,
		Y:          data.Y,
		Width:      width,
		Height:     height,
		Properties: properties,
	}
	return db.Create(component).Error
}
