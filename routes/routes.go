// File: /routes/routes.go
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tripjournal-api/config"
	"tripjournal-api/controllers"
	"tripjournal-api/middleware"
	"tripjournal-api/repositories"
	"tripjournal-api/services"
)

// SetupCORS configures cross-origin access for the API
func SetupCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService, mediaService *services.MediaService) {
	// Repositories
	storyRepo := repositories.NewStoryRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	routeRepo := repositories.NewRouteRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Services
	storyService := services.NewStoryService(storyRepo, locationRepo, routeRepo, mediaService)
	engagementService := services.NewEngagementService(db, userRepo, storyRepo)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(userRepo)
	storyController := controllers.NewStoryController(storyService, engagementService)
	mediaController := controllers.NewMediaController(locationRepo, storyRepo, mediaService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(120, 20))

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.POST("/send-verification", authController.SendVerificationCode)
		auth.POST("/verify-code", authController.VerifyCode)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
		}

		// Story routes
		stories := protected.Group("/stories")
		{
			stories.GET("/", storyController.GetStories)
			stories.POST("/", storyController.CreateStory)
			stories.GET("/liked", storyController.GetLikedStories)
			stories.GET("/:id", storyController.GetStory)
			stories.PUT("/:id", storyController.UpdateStory)
			stories.DELETE("/:id", storyController.DeleteStory)
			stories.POST("/:id/like", storyController.LikeStory)
			stories.DELETE("/:id/like", storyController.DislikeStory)
		}

		// Media routes
		media := protected.Group("/media")
		{
			media.POST("/locations/:id", mediaController.UploadLocationMedia)
			media.GET("/:key/url", mediaController.GetMediaURL)
		}
	}
}
