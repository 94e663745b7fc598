// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Bookmark is a named geographic point owned by exactly one user.
type Bookmark struct {
	ID        int64      // Store-assigned identifier.
	UserID    string     // Identity-provider user id of the owner.
	Name      string     // Display name, never blank.
	Notes     *string    // Optional free-text notes.
	Lat       float64    // Latitude in [-90, 90].
	Lng       float64    // Longitude in [-180, 180].
	CreatedAt time.Time  // Assigned by the store at insert.
	UpdatedAt *time.Time // Set on every mutation, nil until the first update.
}

// SharedPlace is the payload carried by a share link.
type SharedPlace struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Name    string  `json:"name"`
	PlaceID string  `json:"placeId,omitempty"`
}
