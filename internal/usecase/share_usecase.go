package usecase

import (
	"context"

	"pinmap/internal/domain/entity"
)

// ShareLink is a bookmark rendered as a link that opens the place on the map.
type ShareLink struct {
	URL   string
	Place *entity.SharedPlace
}

// ShareUsecase defines share link use cases.
type ShareUsecase interface {
	// ShareBookmark builds the share link of an owned bookmark. origin is used when no
	// public share base URL is configured.
	ShareBookmark(ctx context.Context, userID string, id int64, origin string) (*ShareLink, error)

	// ShareBookmarkQR renders the share link of an owned bookmark as a PNG QR code.
	ShareBookmarkQR(ctx context.Context, userID string, id int64, origin string) ([]byte, error)

	// DecodeSharedPlace reads the place carried by a share link's "place" parameter.
	DecodeSharedPlace(ctx context.Context, token string) (*entity.SharedPlace, error)
}
