package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	deliverycontext "pinmap/internal/delivery/context"
	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/repository"
	"pinmap/internal/usecase"
	"pinmap/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookmarkService implements the BookmarkUsecase interface.
type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	logger       *slog.Logger
	now          func() time.Time
}

// BookmarkServiceParams holds dependencies for BookmarkService, injected by Fx.
type BookmarkServiceParams struct {
	fx.In

	BookmarkRepo repository.BookmarkRepository
	Logger       *slog.Logger
}

// NewBookmarkService is the constructor for bookmarkService.
func NewBookmarkService(params BookmarkServiceParams) usecase.BookmarkUsecase {
	return &bookmarkService{
		bookmarkRepo: params.BookmarkRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookmarkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBookmarks returns the owner's bookmarks in creation order, or by distance when Near is set.
func (srv *bookmarkService) ListBookmarks(ctx context.Context, input *usecase.ListBookmarksInput) ([]*usecase.BookmarkListItem, error) {
	bookmarks, err := srv.bookmarkRepo.ListBookmarksByUser(ctx, input.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to list bookmarks",
			slog.String("user_id", input.UserID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrBookmarkFetchFailed
	}

	items := make([]*usecase.BookmarkListItem, 0, len(bookmarks))
	if input.Near == nil {
		for _, bookmark := range bookmarks {
			items = append(items, &usecase.BookmarkListItem{Bookmark: bookmark})
		}

		return items, nil
	}

	for _, bookmark := range bookmarks {
		distance := util.DistanceMeters(*input.Near, util.NewPoint(bookmark.Lat, bookmark.Lng))
		if input.RadiusMeters > 0 && distance > input.RadiusMeters {
			continue
		}
		items = append(items, &usecase.BookmarkListItem{Bookmark: bookmark, DistanceMeters: &distance})
	}

	// Stable keeps creation order among equidistant bookmarks.
	sort.SliceStable(items, func(i, j int) bool {
		return *items[i].DistanceMeters < *items[j].DistanceMeters
	})

	return items, nil
}

// GetBookmark returns an owned bookmark.
func (srv *bookmarkService) GetBookmark(ctx context.Context, userID string, id int64) (*entity.Bookmark, error) {
	bookmark, err := srv.bookmarkRepo.FindBookmark(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return nil, domainerrors.ErrBookmarkNotFound
		}

		srv.log(ctx).Error("Failed to fetch bookmark",
			slog.Int64("bookmark_id", id),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrBookmarkFetchFailed
	}

	return bookmark, nil
}

// CreateBookmark validates the input and stores it under the caller's ownership.
func (srv *bookmarkService) CreateBookmark(ctx context.Context, userID string, input *usecase.BookmarkInput) (*entity.Bookmark, error) {
	if err := validateBookmarkInput(input); err != nil {
		return nil, err
	}

	created, err := srv.bookmarkRepo.CreateBookmark(ctx, &entity.Bookmark{
		UserID: userID,
		Name:   input.Name,
		Notes:  input.Notes,
		Lat:    input.Lat,
		Lng:    input.Lng,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return nil, err
		}

		srv.log(ctx).Error("Failed to save bookmark",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrBookmarkSaveFailed
	}

	if created == nil {
		srv.log(ctx).Error("Bookmark insert returned no row", slog.String("user_id", userID))

		return nil, domainerrors.ErrBookmarkSaveFailed
	}

	srv.log(ctx).Info("Bookmark created",
		slog.Int64("bookmark_id", created.ID),
		slog.String("user_id", userID),
	)

	return created, nil
}

// UpdateBookmark validates the input and replaces the owned bookmark, stamping updatedAt.
func (srv *bookmarkService) UpdateBookmark(ctx context.Context, userID string, id int64, input *usecase.BookmarkInput) (*entity.Bookmark, error) {
	if err := validateBookmarkInput(input); err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	updated, err := srv.bookmarkRepo.UpdateBookmark(ctx, &entity.Bookmark{
		ID:        id,
		UserID:    userID,
		Name:      input.Name,
		Notes:     input.Notes,
		Lat:       input.Lat,
		Lng:       input.Lng,
		UpdatedAt: &now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return nil, domainerrors.ErrBookmarkNotFound
		}
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return nil, err
		}

		srv.log(ctx).Error("Failed to update bookmark",
			slog.Int64("bookmark_id", id),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrBookmarkUpdateFailed
	}

	return updated, nil
}

// DeleteBookmark removes the owned bookmark; a missing or foreign id is not an error.
func (srv *bookmarkService) DeleteBookmark(ctx context.Context, userID string, id int64) error {
	if err := srv.bookmarkRepo.DeleteBookmark(ctx, id, userID); err != nil {
		srv.log(ctx).Error("Failed to delete bookmark",
			slog.Int64("bookmark_id", id),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return domainerrors.ErrBookmarkDeleteFailed
	}

	return nil
}

func validateBookmarkInput(input *usecase.BookmarkInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	if !util.ValidCoordinate(input.Lat, input.Lng) {
		return domainerrors.ErrValidationFailed.WithDetails("lat must be within [-90, 90] and lng within [-180, 180]")
	}

	return nil
}
