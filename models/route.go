// File: /models/route.go
package models

import (
	"time"
)

// Route is a transit segment between two locations of a story.
type Route struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	StoryID       string    `json:"story_id" gorm:"not null;size:191"`
	Origin        string    `json:"origin" gorm:"not null;size:255"`
	Destination   string    `json:"destination" gorm:"not null;size:255"`
	TransportType string    `json:"transport_type" gorm:"size:50"` // plane, train, bus, car, boat, walk
	Duration      int       `json:"duration"`                      // in minutes
	Note          string    `json:"note" gorm:"type:text"`
	Cost          float64   `json:"cost"`
	Currency      string    `json:"currency" gorm:"size:10"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Story Story `json:"-" gorm:"foreignKey:StoryID"`
}

// RouteInput is one submitted route in a create or update payload. An
// empty ID marks a new route.
type RouteInput struct {
	ID            string  `json:"id"`
	Origin        string  `json:"origin" binding:"required"`
	Destination   string  `json:"destination" binding:"required"`
	TransportType string  `json:"transport_type"`
	Duration      int     `json:"duration"`
	Note          string  `json:"note"`
	Cost          float64 `json:"cost"`
	Currency      string  `json:"currency"`
}

// Patch returns the column values for updating an existing route with
// this input.
func (in RouteInput) Patch() map[string]interface{} {
	return map[string]interface{}{
		"origin":         in.Origin,
		"destination":    in.Destination,
		"transport_type": in.TransportType,
		"duration":       in.Duration,
		"note":           in.Note,
		"cost":           in.Cost,
		"currency":       in.Currency,
	}
}

// Model builds a new persisted route from this input.
func (in RouteInput) Model(id, storyID string) Route {
	return Route{
		ID:            id,
		StoryID:       storyID,
		Origin:        in.Origin,
		Destination:   in.Destination,
		TransportType: in.TransportType,
		Duration:      in.Duration,
		Note:          in.Note,
		Cost:          in.Cost,
		Currency:      in.Currency,
	}
}
