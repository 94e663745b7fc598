// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/repository"
	"pinmap/internal/infra/persistence/model"
	"pinmap/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// bookmarkRepository implements the repository.BookmarkRepository interface.
type bookmarkRepository struct {
	q *query.Query
}

// NewBookmarkRepository is the constructor for bookmarkRepository.
func NewBookmarkRepository(db *gorm.DB) repository.BookmarkRepository {
	return &bookmarkRepository{
		q: query.Use(db),
	}
}

// owned narrows a query to one bookmark of one owner.
func (repo *bookmarkRepository) owned(id int64, userID string) []gen.Condition {
	return []gen.Condition{
		repo.q.BookmarkModel.ID.Eq(id),
		repo.q.BookmarkModel.UserID.Eq(userID),
	}
}

// ListBookmarksByUser returns the owner's bookmarks in creation order.
func (repo *bookmarkRepository) ListBookmarksByUser(ctx context.Context, userID string) ([]*entity.Bookmark, error) {
	bookmarkModels, err := repo.q.BookmarkModel.WithContext(ctx).
		Where(repo.q.BookmarkModel.UserID.Eq(userID)).
		Order(repo.q.BookmarkModel.ID.Asc()).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list bookmarks")
	}

	bookmarks := make([]*entity.Bookmark, 0, len(bookmarkModels))
	for _, bookmarkM := range bookmarkModels {
		bookmarks = append(bookmarks, toBookmarkDomain(bookmarkM))
	}

	return bookmarks, nil
}

// FindBookmark retrieves a bookmark by id, scoped to its owner.
func (repo *bookmarkRepository) FindBookmark(ctx context.Context, id int64, userID string) (*entity.Bookmark, error) {
	bookmarkM, err := repo.q.BookmarkModel.WithContext(ctx).
		Where(repo.owned(id, userID)...).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookmarkNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find bookmark")
	}

	return toBookmarkDomain(bookmarkM), nil
}

// CreateBookmark inserts a bookmark and reads back the store-assigned id and created_at.
// A nil bookmark without error means the store returned no row.
func (repo *bookmarkRepository) CreateBookmark(ctx context.Context, bookmark *entity.Bookmark) (*entity.Bookmark, error) {
	bookmarkM := fromBookmarkDomain(bookmark)
	bookmarkM.ID = 0

	err := repo.q.BookmarkModel.WithContext(ctx).
		Clauses(clause.Returning{}).
		Create(bookmarkM)
	if err != nil {
		return nil, translateWriteError(err, "failed to create bookmark")
	}

	if bookmarkM.ID == 0 {
		return nil, nil
	}

	return toBookmarkDomain(bookmarkM), nil
}

// UpdateBookmark overwrites name, notes, coordinates and updated_at of an owned bookmark.
func (repo *bookmarkRepository) UpdateBookmark(ctx context.Context, bookmark *entity.Bookmark) (*entity.Bookmark, error) {
	var bookmarkM model.BookmarkModel

	b := repo.q.BookmarkModel

	// A map keeps zero coordinates and nil notes in the SET list.
	info, err := b.WithContext(ctx).
		Returning(&bookmarkM).
		Where(repo.owned(bookmark.ID, bookmark.UserID)...).
		Updates(map[string]any{
			b.Name.ColumnName().String():      bookmark.Name,
			b.Notes.ColumnName().String():     bookmark.Notes,
			b.Lat.ColumnName().String():       bookmark.Lat,
			b.Lng.ColumnName().String():       bookmark.Lng,
			b.UpdatedAt.ColumnName().String(): bookmark.UpdatedAt,
		})
	if err != nil {
		return nil, translateWriteError(err, "failed to update bookmark")
	}

	if info.RowsAffected == 0 {
		return nil, repository.ErrBookmarkNotFound
	}

	return toBookmarkDomain(&bookmarkM), nil
}

// DeleteBookmark removes an owned bookmark. Deleting a missing or foreign id is a no-op.
func (repo *bookmarkRepository) DeleteBookmark(ctx context.Context, id int64, userID string) error {
	_, err := repo.q.BookmarkModel.WithContext(ctx).
		Where(repo.owned(id, userID)...).
		Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete bookmark")
	}

	return nil
}

// --- Mapper Functions ---

// toBookmarkDomain converts a GORM BookmarkModel to a domain Bookmark entity.
func toBookmarkDomain(data *model.BookmarkModel) *entity.Bookmark {
	if data == nil {
		return nil
	}

	return &entity.Bookmark{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Notes:     data.Notes,
		Lat:       data.Lat,
		Lng:       data.Lng,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBookmarkDomain converts a domain Bookmark entity to a GORM BookmarkModel.
func fromBookmarkDomain(data *entity.Bookmark) *model.BookmarkModel {
	if data == nil {
		return nil
	}

	return &model.BookmarkModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Notes:     data.Notes,
		Lat:       data.Lat,
		Lng:       data.Lng,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
