// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"pinmap/internal/domain/entity"
	"pinmap/internal/errors"
)

// ErrBookmarkNotFound is returned when no bookmark matches both the id and the owner.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkRepository defines owner-scoped bookmark persistence.
// Every lookup or mutation by id also filters on the owner; the id alone never proves ownership.
type BookmarkRepository interface {
	// ListBookmarksByUser returns the owner's bookmarks in creation order.
	ListBookmarksByUser(ctx context.Context, userID string) ([]*entity.Bookmark, error)

	// FindBookmark returns ErrBookmarkNotFound unless a row matches id AND userID.
	FindBookmark(ctx context.Context, id int64, userID string) (*entity.Bookmark, error)

	// CreateBookmark inserts the bookmark and returns the stored row.
	// A nil row with a nil error means the store accepted the insert but returned nothing.
	CreateBookmark(ctx context.Context, bookmark *entity.Bookmark) (*entity.Bookmark, error)

	// UpdateBookmark replaces the row matching bookmark.ID AND bookmark.UserID and returns it.
	// Returns ErrBookmarkNotFound when no row matched.
	UpdateBookmark(ctx context.Context, bookmark *entity.Bookmark) (*entity.Bookmark, error)

	// DeleteBookmark removes the row matching id AND userID. Missing rows are not an error.
	DeleteBookmark(ctx context.Context, id int64, userID string) error
}
