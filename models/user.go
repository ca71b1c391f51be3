// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	FirstName     string    `json:"first_name" gorm:"not null;size:255"`
	LastName      string    `json:"last_name" gorm:"size:255"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password      string    `json:"-" gorm:"not null;size:255"`
	Role          string    `json:"role" gorm:"not null;default:'user';size:50"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false"`
	Avatar        *string   `json:"avatar" gorm:"size:500"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Stories   []Story     `json:"stories,omitempty" gorm:"foreignKey:UserID"`
	LikedRows []StoryLike `json:"-" gorm:"foreignKey:UserID"`
}

// StoryLike is one row of the user/story liked relation. The pair is
// unique at the database level (see database constraints).
type StoryLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;size:191"`
	StoryID   string    `json:"story_id" gorm:"not null;size:191"`
	CreatedAt time.Time `json:"created_at"`

	User  User  `json:"-" gorm:"foreignKey:UserID"`
	Story Story `json:"-" gorm:"foreignKey:StoryID"`
}

// UpdateProfileRequest for PUT /users/profile
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Avatar    *string `json:"avatar"`
}
