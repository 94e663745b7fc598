package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"pinmap/internal/delivery/api/response"
	"pinmap/internal/delivery/api/validator"
	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/usecase"
	"pinmap/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookmarkHandlerParams holds dependencies for BookmarkHandler, injected by Fx.
type BookmarkHandlerParams struct {
	fx.In

	BookmarkUC usecase.BookmarkUsecase
	Logger     *slog.Logger
}

// BookmarkHandler holds dependencies for bookmark-related handlers
type BookmarkHandler struct {
	bookmarkUC usecase.BookmarkUsecase
	logger     *slog.Logger
}

// NewBookmarkHandler is the constructor for BookmarkHandler
func NewBookmarkHandler(params BookmarkHandlerParams) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkUC: params.BookmarkUC,
		logger:     params.Logger,
	}
}

// BookmarkRequest is the body of create and update.
type BookmarkRequest struct {
	Name  string   `json:"name" validate:"required"`
	Notes *string  `json:"notes"`
	Lat   *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng   *float64 `json:"lng" validate:"required,min=-180,max=180"`
}

// BookmarkResponse is a bookmark as the browser client consumes it.
type BookmarkResponse struct {
	ID             int64      `json:"id"`
	UserID         string     `json:"userId"`
	Name           string     `json:"name"`
	Notes          *string    `json:"notes"`
	Lat            float64    `json:"lat"`
	Lng            float64    `json:"lng"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt"`
	DistanceMeters *float64   `json:"distanceMeters,omitempty"`
}

// ListBookmarks handles GET /api/bookmarks[?near=lat,lng[&radius=meters]].
func (h *BookmarkHandler) ListBookmarks(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	input, err := parseListQuery(c, userID)
	if err != nil {
		return err
	}

	items, err := h.bookmarkUC.ListBookmarks(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	bookmarks := make([]*BookmarkResponse, 0, len(items))
	for _, item := range items {
		resp := toBookmarkResponse(item.Bookmark)
		resp.DistanceMeters = item.DistanceMeters
		bookmarks = append(bookmarks, resp)
	}

	return response.JSON(c, http.StatusOK, bookmarks)
}

// GetBookmark handles GET /api/bookmarks/:id.
func (h *BookmarkHandler) GetBookmark(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	bookmark, err := h.bookmarkUC.GetBookmark(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, toBookmarkResponse(bookmark))
}

// CreateBookmark handles POST /api/bookmarks.
func (h *BookmarkHandler) CreateBookmark(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req BookmarkRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	bookmark, err := h.bookmarkUC.CreateBookmark(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, toBookmarkResponse(bookmark))
}

// UpdateBookmark handles PUT /api/bookmarks/:id.
func (h *BookmarkHandler) UpdateBookmark(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	var req BookmarkRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	bookmark, err := h.bookmarkUC.UpdateBookmark(c.Request().Context(), userID, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, toBookmarkResponse(bookmark))
}

// DeleteBookmark handles DELETE /api/bookmarks/:id. It answers 204 whether or not
// the bookmark existed.
func (h *BookmarkHandler) DeleteBookmark(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	if err := h.bookmarkUC.DeleteBookmark(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func parseBookmarkID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidID
	}

	return id, nil
}

func validationFailed(c echo.Context, err error) error {
	return response.ValidationFailed(c, validator.Details(err))
}

func (r *BookmarkRequest) toInput() *usecase.BookmarkInput {
	return &usecase.BookmarkInput{
		Name:  r.Name,
		Notes: r.Notes,
		Lat:   *r.Lat,
		Lng:   *r.Lng,
	}
}

func parseListQuery(c echo.Context, userID string) (*usecase.ListBookmarksInput, error) {
	input := &usecase.ListBookmarksInput{UserID: userID}

	near := c.QueryParam("near")
	radius := c.QueryParam("radius")
	if near == "" {
		if radius != "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("radius requires near")
		}

		return input, nil
	}

	point, err := util.ParseLatLng(near)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("near must be lat,lng")
	}
	input.Near = &point

	if radius != "" {
		meters, err := strconv.ParseFloat(radius, 64)
		if err != nil || meters <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be a positive number of meters")
		}
		input.RadiusMeters = meters
	}

	return input, nil
}

func toBookmarkResponse(bookmark *entity.Bookmark) *BookmarkResponse {
	return &BookmarkResponse{
		ID:        bookmark.ID,
		UserID:    bookmark.UserID,
		Name:      bookmark.Name,
		Notes:     bookmark.Notes,
		Lat:       bookmark.Lat,
		Lng:       bookmark.Lng,
		CreatedAt: bookmark.CreatedAt,
		UpdatedAt: bookmark.UpdatedAt,
	}
}
