// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tripjournal-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Story{},
		&models.Location{},
		&models.Route{},
		&models.StoryLike{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Story feed queries
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_stories_user_created ON stories(user_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for stories: %v\n", err)
	}

	// Child lookups during reconciliation
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_locations_story ON locations(story_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for locations: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_routes_story ON routes(story_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for routes: %v\n", err)
	}

	// Like lookups by user and pair
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_story_likes_user ON story_likes(user_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for story_likes: %v\n", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// Prevent duplicate likes
	if err := db.Exec("ALTER TABLE story_likes ADD CONSTRAINT uk_story_likes_user_story UNIQUE (user_id, story_id)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for story_likes: %v\n", err)
	}

	// The like counter must never be negative
	if err := db.Exec("ALTER TABLE stories ADD CONSTRAINT ck_stories_likes_count CHECK (likes_count >= 0)").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for stories: %v\n", err)
	}

	return nil
}

// SeedData can be used to populate the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	testUsers := []models.User{
		{
			ID:            "user-1",
			FirstName:     "John",
			LastName:      "Doe",
			Email:         "john@example.com",
			Password:      "$2a$10$dummy", // This should be properly hashed in real scenarios
			Role:          "user",
			EmailVerified: true,
		},
		{
			ID:            "user-2",
			FirstName:     "Jane",
			LastName:      "Smith",
			Email:         "jane@example.com",
			Password:      "$2a$10$dummy",
			Role:          "user",
			EmailVerified: true,
		},
	}

	for _, user := range testUsers {
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Warning: Could not create test user %s: %v\n", user.Email, err)
		}
	}

	fmt.Println("Database seeded with test data")
	return nil
}
