package usecase

import (
	"context"

	"pinmap/internal/domain/entity"

	"github.com/paulmach/orb"
)

// BookmarkInput is the client-supplied part of a bookmark.
type BookmarkInput struct {
	Name  string
	Notes *string
	Lat   float64
	Lng   float64
}

// ListBookmarksInput scopes a listing to its owner, optionally ordered by distance from Near.
type ListBookmarksInput struct {
	UserID string
	// Near switches ordering from creation order to distance.
	Near *orb.Point
	// RadiusMeters drops bookmarks farther than this from Near. Zero means unbounded.
	RadiusMeters float64
}

// BookmarkListItem is a listed bookmark; DistanceMeters is set only for Near listings.
type BookmarkListItem struct {
	Bookmark       *entity.Bookmark
	DistanceMeters *float64
}

// BookmarkUsecase defines the owner-scoped bookmark use cases.
type BookmarkUsecase interface {
	ListBookmarks(ctx context.Context, input *ListBookmarksInput) ([]*BookmarkListItem, error)

	GetBookmark(ctx context.Context, userID string, id int64) (*entity.Bookmark, error)

	CreateBookmark(ctx context.Context, userID string, input *BookmarkInput) (*entity.Bookmark, error)

	// UpdateBookmark replaces name, notes and coordinates; last writer wins.
	UpdateBookmark(ctx context.Context, userID string, id int64, input *BookmarkInput) (*entity.Bookmark, error)

	// DeleteBookmark succeeds whether or not the bookmark existed.
	DeleteBookmark(ctx context.Context, userID string, id int64) error
}
