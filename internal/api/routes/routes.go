package routes

import (
	"design-canvas-backend/internal/api/handlers"
	"design-canvas-backend/internal/api/middleware"
	"design-canvas-backend/internal/config"
	"design-canvas-backend/internal/repository"
	"design-canvas-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	frameRepo := repository.NewFrameRepository(db)
	componentRepo := repository.NewComponentRepository(db)

	// Initialize services
	projectService := service.NewProjectService(projectRepo, validator)
	frameService := service.NewFrameService(frameRepo, projectRepo, validator)
	componentService := service.NewComponentService(componentRepo, frameRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService)
	frameHandler := handlers.NewFrameHandler(frameService)
	componentHandler := handlers.NewComponentHandler(componentService)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		api.POST("/projects", projectHandler.CreateProject)
		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/projects/:id", projectHandler.GetProject)
		api.PUT("/projects/:id", projectHandler.UpdateProject)
		api.DELETE("/projects/:id", projectHandler.DeleteProject)

		api.POST("/frames", frameHandler.CreateFrame)
		api.GET("/frames", frameHandler.ListFrames)
		api.GET("/frames/:id", frameHandler.GetFrame)
		api.PUT("/frames/:id", frameHandler.UpdateFrame)
		api.DELETE("/frames/:id", frameHandler.DeleteFrame)

		api.POST("/components", componentHandler.CreateComponent)
		api.GET("/components/:id", componentHandler.GetComponent)
		api.GET("/frames/:id/components", componentHandler.ListFrameComponents)
		api.PUT("/components/:id", componentHandler.UpdateComponent)
		api.DELETE("/components/:id", componentHandler.DeleteComponent)
	}

	// Non-API routes serve the frontend bundle when one is configured
	if cfg.StaticDir != "" {
		router.NoRoute(middleware.SPAFallback(cfg.StaticDir))
	}

	return router
}
