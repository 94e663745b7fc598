package impl

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"pinmap/config"
	deliverycontext "pinmap/internal/delivery/context"
	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/service"
	"pinmap/internal/usecase"
	"pinmap/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SharePlaceParam is the query parameter the map page reads a shared place from.
const SharePlaceParam = "place"

// shareService implements the ShareUsecase interface.
type shareService struct {
	bookmarks usecase.BookmarkUsecase
	qrService service.QRCodeService
	baseURL   string
	logger    *slog.Logger
}

// ShareServiceParams holds dependencies for ShareService, injected by Fx.
type ShareServiceParams struct {
	fx.In

	Bookmarks usecase.BookmarkUsecase
	QRService service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewShareService is the constructor for shareService.
func NewShareService(params ShareServiceParams) usecase.ShareUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.Share != nil {
		baseURL = params.Config.Share.BaseURL
	}

	return &shareService{
		bookmarks: params.Bookmarks,
		qrService: params.QRService,
		baseURL:   strings.TrimRight(baseURL, "/"),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *shareService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ShareBookmark builds "<base>/?place=<token>" for an owned bookmark.
func (srv *shareService) ShareBookmark(ctx context.Context, userID string, id int64, origin string) (*usecase.ShareLink, error) {
	bookmark, err := srv.bookmarks.GetBookmark(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	place := &entity.SharedPlace{
		Lat:  bookmark.Lat,
		Lng:  bookmark.Lng,
		Name: bookmark.Name,
	}

	token, err := EncodeSharedPlace(place)
	if err != nil {
		srv.log(ctx).Error("Failed to encode shared place", slog.Int64("bookmark_id", id), slog.Any("error", err))

		return nil, domainerrors.ErrShareFailed
	}

	base := srv.baseURL
	if base == "" {
		base = strings.TrimRight(origin, "/")
	}

	return &usecase.ShareLink{
		URL:   base + "/?" + url.Values{SharePlaceParam: {token}}.Encode(),
		Place: place,
	}, nil
}

// ShareBookmarkQR renders the share link as a QR code.
func (srv *shareService) ShareBookmarkQR(ctx context.Context, userID string, id int64, origin string) ([]byte, error) {
	link, err := srv.ShareBookmark(ctx, userID, id, origin)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateShareQR(link.URL)
	if err != nil {
		srv.log(ctx).Error("Failed to render share QR code", slog.Int64("bookmark_id", id), slog.Any("error", err))

		return nil, domainerrors.ErrShareFailed
	}

	return png, nil
}

// DecodeSharedPlace validates and decodes a share token.
func (srv *shareService) DecodeSharedPlace(ctx context.Context, token string) (*entity.SharedPlace, error) {
	place, err := DecodeSharedPlace(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected share token", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidShareToken.WithDetails(err.Error())
	}

	return place, nil
}

// EncodeSharedPlace produces the base64 JSON token the map page understands.
func EncodeSharedPlace(place *entity.SharedPlace) (string, error) {
	raw, err := json.Marshal(place)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode shared place")
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeSharedPlace accepts standard or URL-safe base64, padded or not.
func DecodeSharedPlace(token string) (*entity.SharedPlace, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("place is empty")
	}

	raw, err := decodeBase64(token)
	if err != nil {
		return nil, err
	}

	var place entity.SharedPlace
	if err := json.Unmarshal(raw, &place); err != nil {
		return nil, errors.New("place is not valid JSON")
	}

	if !util.ValidCoordinate(place.Lat, place.Lng) {
		return nil, errors.New("place coordinates are out of range")
	}

	return &place, nil
}

func decodeBase64(token string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}

	for _, encoding := range encodings {
		if raw, err := encoding.DecodeString(token); err == nil {
			return raw, nil
		}
	}

	return nil, errors.New("place is not valid base64")
}
