package handler

import (
	"net/http"

	"pinmap/config"
	"pinmap/internal/delivery/api/response"
	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	ShareUC usecase.ShareUsecase
	Config  *config.Config
}

// ShareHandler serves share links of bookmarks.
type ShareHandler struct {
	shareUC       usecase.ShareUsecase
	publicBaseURL string
}

// NewShareHandler is the constructor for ShareHandler.
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		shareUC:       params.ShareUC,
		publicBaseURL: params.Config.HTTP.PublicBaseURL,
	}
}

// ShareLinkResponse is a share link together with the place it carries.
type ShareLinkResponse struct {
	URL   string              `json:"url"`
	Place *entity.SharedPlace `json:"place"`
}

// ShareBookmark handles GET /api/bookmarks/:id/share.
func (h *ShareHandler) ShareBookmark(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	link, err := h.shareUC.ShareBookmark(c.Request().Context(), userID, id, requestOrigin(c, h.publicBaseURL))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, ShareLinkResponse{URL: link.URL, Place: link.Place})
}

// ShareBookmarkQR handles GET /api/bookmarks/:id/share/qr.
func (h *ShareHandler) ShareBookmarkQR(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	png, err := h.shareUC.ShareBookmarkQR(c.Request().Context(), userID, id, requestOrigin(c, h.publicBaseURL))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// DecodeSharedPlace handles GET /api/share?place=<token>.
func (h *ShareHandler) DecodeSharedPlace(c echo.Context) error {
	token := c.QueryParam("place")
	if token == "" {
		return domainerrors.ErrInvalidShareToken.WithDetails("place is required")
	}

	place, err := h.shareUC.DecodeSharedPlace(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, place)
}
