// File: /models/story.go
package models

import (
	"time"
)

// Story is a user-authored travel narrative aggregating locations and
// transit routes. Countries is derived from the story's locations and
// recomputed whenever the location set changes.
type Story struct {
	ID          string      `json:"id" gorm:"primaryKey;size:191"`
	UserID      string      `json:"user_id" gorm:"not null;size:191"`
	Title       string      `json:"title" gorm:"not null;size:255"`
	Description string      `json:"description" gorm:"type:text"`
	Countries   StringSlice `json:"countries" gorm:"type:json"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Budget      float64     `json:"budget"`
	Currency    string      `json:"currency" gorm:"size:10"`
	LikesCount  int         `json:"likes_count" gorm:"default:0"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Relationships
	User      User       `json:"-" gorm:"foreignKey:UserID"`
	Locations []Location `json:"locations" gorm:"foreignKey:StoryID"`
	Routes    []Route    `json:"routes" gorm:"foreignKey:StoryID"`
}

// CreateStoryRequest for POST /stories
type CreateStoryRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Budget      float64         `json:"budget"`
	Currency    string          `json:"currency"`
	Locations   []LocationInput `json:"locations"`
	Routes      []RouteInput    `json:"routes"`
}

// UpdateStoryRequest for PUT /stories/:id. Scalar fields are patched
// only when present. A nil Locations/Routes slice leaves that child
// collection untouched; an empty one deletes every child.
type UpdateStoryRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	Budget      *float64         `json:"budget"`
	Currency    *string          `json:"currency"`
	Locations   *[]LocationInput `json:"locations"`
	Routes      *[]RouteInput    `json:"routes"`
}

// ScalarPatch builds the column patch for the fields present in the
// request.
func (r UpdateStoryRequest) ScalarPatch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.Title != nil {
		patch["title"] = *r.Title
	}
	if r.Description != nil {
		patch["description"] = *r.Description
	}
	if r.StartDate != nil {
		patch["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		patch["end_date"] = *r.EndDate
	}
	if r.Budget != nil {
		patch["budget"] = *r.Budget
	}
	if r.Currency != nil {
		patch["currency"] = *r.Currency
	}
	return patch
}

// StoryResponse wraps a story for single-story endpoints
type StoryResponse struct {
	Message string `json:"message,omitempty"`
	Story   Story  `json:"story"`
}

// StoriesResponse for list endpoints
type StoriesResponse struct {
	Count   int     `json:"count"`
	Stories []Story `json:"stories"`
}
