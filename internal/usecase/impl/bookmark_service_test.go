package impl

import (
	"context"
	"testing"
	"time"

	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/repository"
	mockRepo "pinmap/internal/mocks/repository"
	"pinmap/internal/usecase"
	"pinmap/internal/util"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookmarkServiceFixtures holds all test dependencies for bookmark service tests.
type bookmarkServiceFixtures struct {
	service      *bookmarkService
	bookmarkRepo *mockRepo.MockBookmarkRepository
}

func createTestBookmarkService(t *testing.T) bookmarkServiceFixtures {
	bookmarkRepo := mockRepo.NewMockBookmarkRepository(t)
	svc := NewBookmarkService(BookmarkServiceParams{
		BookmarkRepo: bookmarkRepo,
		Logger:       newTestLogger(),
	}).(*bookmarkService)

	return bookmarkServiceFixtures{
		service:      svc,
		bookmarkRepo: bookmarkRepo,
	}
}

func TestBookmarkService_ListBookmarks(t *testing.T) {
	fx := createTestBookmarkService(t)
	ctx := context.Background()

	stored := []*entity.Bookmark{
		{ID: 1, UserID: "user-a", Name: "Big Ben", Lat: 51.5007, Lng: -0.1246},
		{ID: 2, UserID: "user-a", Name: "Eiffel Tower", Lat: 48.8584, Lng: 2.2945},
	}
	fx.bookmarkRepo.EXPECT().ListBookmarksByUser(ctx, "user-a").Return(stored, nil)

	items, err := fx.service.ListBookmarks(ctx, &usecase.ListBookmarksInput{UserID: "user-a"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].Bookmark.ID)
	assert.Equal(t, int64(2), items[1].Bookmark.ID)
	assert.Nil(t, items[0].DistanceMeters)
}

func TestBookmarkService_ListBookmarks_Near(t *testing.T) {
	ctx := context.Background()
	stored := []*entity.Bookmark{
		{ID: 1, UserID: "user-a", Name: "Big Ben", Lat: 51.5007, Lng: -0.1246},
		{ID: 2, UserID: "user-a", Name: "Eiffel Tower", Lat: 48.8584, Lng: 2.2945},
		{ID: 3, UserID: "user-a", Name: "Tower Bridge", Lat: 51.5055, Lng: -0.0754},
	}
	paris := util.NewPoint(48.8566, 2.3522)

	t.Run("sorted by distance", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		fx.bookmarkRepo.EXPECT().ListBookmarksByUser(ctx, "user-a").Return(stored, nil)

		items, err := fx.service.ListBookmarks(ctx, &usecase.ListBookmarksInput{UserID: "user-a", Near: &paris})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, int64(2), items[0].Bookmark.ID)
		require.NotNil(t, items[0].DistanceMeters)
		assert.Less(t, *items[0].DistanceMeters, *items[1].DistanceMeters)
		assert.LessOrEqual(t, *items[1].DistanceMeters, *items[2].DistanceMeters)
	})

	t.Run("radius filter", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		fx.bookmarkRepo.EXPECT().ListBookmarksByUser(ctx, "user-a").Return(stored, nil)

		items, err := fx.service.ListBookmarks(ctx, &usecase.ListBookmarksInput{
			UserID:       "user-a",
			Near:         &paris,
			RadiusMeters: 10_000,
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Eiffel Tower", items[0].Bookmark.Name)
	})
}

func TestBookmarkService_ListBookmarks_StoreFault(t *testing.T) {
	fx := createTestBookmarkService(t)
	ctx := context.Background()

	fx.bookmarkRepo.EXPECT().
		ListBookmarksByUser(ctx, "user-a").
		Return(nil, errors.New("connection reset by peer"))

	items, err := fx.service.ListBookmarks(ctx, &usecase.ListBookmarksInput{UserID: "user-a"})
	assert.Nil(t, items)
	assert.ErrorIs(t, err, domainerrors.ErrBookmarkFetchFailed)
	assert.NotContains(t, err.Error(), "connection reset")
}

func TestBookmarkService_GetBookmark(t *testing.T) {
	ctx := context.Background()

	t.Run("owned", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		want := &entity.Bookmark{ID: 7, UserID: "user-a", Name: "Home"}
		fx.bookmarkRepo.EXPECT().FindBookmark(ctx, int64(7), "user-a").Return(want, nil)

		got, err := fx.service.GetBookmark(ctx, "user-a", 7)
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("foreign or missing", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		fx.bookmarkRepo.EXPECT().FindBookmark(ctx, int64(7), "user-b").Return(nil, repository.ErrBookmarkNotFound)

		_, err := fx.service.GetBookmark(ctx, "user-b", 7)
		assert.ErrorIs(t, err, domainerrors.ErrBookmarkNotFound)
	})

	t.Run("store fault", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		fx.bookmarkRepo.EXPECT().
			FindBookmark(ctx, int64(7), "user-a").
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to find bookmark"))

		_, err := fx.service.GetBookmark(ctx, "user-a", 7)
		assert.ErrorIs(t, err, domainerrors.ErrBookmarkFetchFailed)
	})
}

func TestBookmarkService_CreateBookmark(t *testing.T) {
	ctx := context.Background()
	input := &usecase.BookmarkInput{Name: "Big Ben", Notes: ptr("clock"), Lat: 51.5007, Lng: -0.1246}

	t.Run("owner is the caller", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		createdAt := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

		fx.bookmarkRepo.EXPECT().
			CreateBookmark(ctx, mock.MatchedBy(func(b *entity.Bookmark) bool {
				return b.UserID == "user-a" && b.ID == 0 && b.Name == "Big Ben" && *b.Notes == "clock"
			})).
			RunAndReturn(func(_ context.Context, b *entity.Bookmark) (*entity.Bookmark, error) {
				stored := *b
				stored.ID = 42
				stored.CreatedAt = createdAt

				return &stored, nil
			})

		created, err := fx.service.CreateBookmark(ctx, "user-a", input)
		require.NoError(t, err)
		assert.Equal(t, int64(42), created.ID)
		assert.Equal(t, "user-a", created.UserID)
		assert.Equal(t, createdAt, created.CreatedAt)
		assert.Nil(t, created.UpdatedAt)
	})

	t.Run("no row returned", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		fx.bookmarkRepo.EXPECT().CreateBookmark(ctx, mock.Anything).Return(nil, nil)

		_, err := fx.service.CreateBookmark(ctx, "user-a", input)
		assert.ErrorIs(t, err, domainerrors.ErrBookmarkSaveFailed)
	})

	t.Run("store fault", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		fx.bookmarkRepo.EXPECT().CreateBookmark(ctx, mock.Anything).Return(nil, errors.New("disk full"))

		_, err := fx.service.CreateBookmark(ctx, "user-a", input)
		assert.ErrorIs(t, err, domainerrors.ErrBookmarkSaveFailed)
		assert.NotContains(t, err.Error(), "disk full")
	})
}

func TestBookmarkService_CreateBookmark_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.BookmarkInput
	}{
		{"nil input", nil},
		{"empty name", &usecase.BookmarkInput{Name: "", Lat: 1, Lng: 1}},
		{"blank name", &usecase.BookmarkInput{Name: " \t ", Lat: 1, Lng: 1}},
		{"latitude out of range", &usecase.BookmarkInput{Name: "x", Lat: 90.5, Lng: 1}},
		{"longitude out of range", &usecase.BookmarkInput{Name: "x", Lat: 1, Lng: -181}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository expectation: nothing may be written.
			fx := createTestBookmarkService(t)

			_, err := fx.service.CreateBookmark(context.Background(), "user-a", tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestBookmarkService_UpdateBookmark(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	input := &usecase.BookmarkInput{Name: "Renamed", Lat: 10, Lng: 20}

	t.Run("stamps updatedAt", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		fx.service.now = func() time.Time { return now }

		fx.bookmarkRepo.EXPECT().
			UpdateBookmark(ctx, mock.MatchedBy(func(b *entity.Bookmark) bool {
				return b.ID == 5 && b.UserID == "user-a" && b.Name == "Renamed" &&
					b.Notes == nil && b.UpdatedAt != nil && b.UpdatedAt.Equal(now)
			})).
			RunAndReturn(func(_ context.Context, b *entity.Bookmark) (*entity.Bookmark, error) {
				stored := *b
				stored.CreatedAt = now.Add(-time.Hour)

				return &stored, nil
			})

		updated, err := fx.service.UpdateBookmark(ctx, "user-a", 5, input)
		require.NoError(t, err)
		require.NotNil(t, updated.UpdatedAt)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	})

	t.Run("foreign or missing", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		fx.bookmarkRepo.EXPECT().UpdateBookmark(ctx, mock.Anything).Return(nil, repository.ErrBookmarkNotFound)

		_, err := fx.service.UpdateBookmark(ctx, "user-b", 5, input)
		assert.ErrorIs(t, err, domainerrors.ErrBookmarkNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		fx := createTestBookmarkService(t)

		_, err := fx.service.UpdateBookmark(ctx, "user-a", 5, &usecase.BookmarkInput{Name: "", Lat: 0, Lng: 0})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("store fault", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		fx.bookmarkRepo.EXPECT().UpdateBookmark(ctx, mock.Anything).Return(nil, errors.New("deadlock"))

		_, err := fx.service.UpdateBookmark(ctx, "user-a", 5, input)
		assert.ErrorIs(t, err, domainerrors.ErrBookmarkUpdateFailed)
	})
}

func TestBookmarkService_DeleteBookmark(t *testing.T) {
	ctx := context.Background()

	t.Run("always scoped to owner", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		fx.bookmarkRepo.EXPECT().DeleteBookmark(ctx, int64(9), "user-a").Return(nil)

		assert.NoError(t, fx.service.DeleteBookmark(ctx, "user-a", 9))
	})

	t.Run("store fault", func(t *testing.T) {
		fx := createTestBookmarkService(t)
		fx.bookmarkRepo.EXPECT().DeleteBookmark(ctx, int64(9), "user-a").Return(errors.New("boom"))

		assert.ErrorIs(t, fx.service.DeleteBookmark(ctx, "user-a", 9), domainerrors.ErrBookmarkDeleteFailed)
	})
}
