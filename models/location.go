// File: /models/location.go
package models

import (
	"time"
)

// Location is a single place entry within a story. Photos and Videos
// hold opaque object-storage keys; the blob bytes live in the media
// store, the location only owns the key lists.
type Location struct {
	ID        string      `json:"id" gorm:"primaryKey;size:191"`
	StoryID   string      `json:"story_id" gorm:"not null;size:191"`
	Country   string      `json:"country" gorm:"not null;size:255"`
	City      string      `json:"city" gorm:"size:255"`
	StartDate time.Time   `json:"start_date"`
	EndDate   time.Time   `json:"end_date"`
	Narrative string      `json:"narrative" gorm:"type:text"`
	Cost      float64     `json:"cost"`
	Currency  string      `json:"currency" gorm:"size:10"`
	Photos    StringSlice `json:"photos" gorm:"type:json"`
	Videos    StringSlice `json:"videos" gorm:"type:json"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	Story Story `json:"-" gorm:"foreignKey:StoryID"`
}

// LocationInput is one submitted location in a create or update
// payload. An empty ID marks a new location.
type LocationInput struct {
	ID        string    `json:"id"`
	Country   string    `json:"country" binding:"required"`
	City      string    `json:"city"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Narrative string    `json:"narrative"`
	Cost      float64   `json:"cost"`
	Currency  string    `json:"currency"`
	Photos    []string  `json:"photos"`
	Videos    []string  `json:"videos"`
}

// Patch returns the column values for updating an existing location
// with this input.
func (in LocationInput) Patch() map[string]interface{} {
	return map[string]interface{}{
		"country":    in.Country,
		"city":       in.City,
		"start_date": in.StartDate,
		"end_date":   in.EndDate,
		"narrative":  in.Narrative,
		"cost":       in.Cost,
		"currency":   in.Currency,
		"photos":     StringSlice(in.Photos),
		"videos":     StringSlice(in.Videos),
	}
}

// Model builds a new persisted location from this input.
func (in LocationInput) Model(id, storyID string) Location {
	return Location{
		ID:        id,
		StoryID:   storyID,
		Country:   in.Country,
		City:      in.City,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Narrative: in.Narrative,
		Cost:      in.Cost,
		Currency:  in.Currency,
		Photos:    StringSlice(in.Photos),
		Videos:    StringSlice(in.Videos),
	}
}

// MediaKeys returns every photo and video key held by the location.
func (l Location) MediaKeys() []string {
	keys := make([]string, 0, len(l.Photos)+len(l.Videos))
	keys = append(keys, l.Photos...)
	keys = append(keys, l.Videos...)
	return keys
}
