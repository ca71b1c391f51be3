// File: /main.go
package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"tripjournal-api/config"
	"tripjournal-api/database"
	"tripjournal-api/jobs"
	"tripjournal-api/routes"
	"tripjournal-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with test data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Connect to the media object store
	mediaService, err := services.NewMediaService(cfg)
	if err != nil {
		log.Fatal("Failed to connect to media store:", err)
	}

	emailService := services.NewEmailService(cfg)

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService, mediaService)

	// Sweep dangling likes left behind by story deletions
	likeScrub := jobs.NewLikeScrubJob(db, time.Hour)
	likeScrub.Start()
	defer likeScrub.Stop()

	// Start server
	log.Printf("Starting TripJournal API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
