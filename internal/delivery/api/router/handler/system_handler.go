package handler

import (
	"net/http"

	"pinmap/config"
	"pinmap/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// SystemHandler serves public, unauthenticated endpoints.
type SystemHandler struct {
	googleMapsAPIKey string
}

// NewSystemHandler is the constructor for SystemHandler.
func NewSystemHandler(cfg *config.Config) *SystemHandler {
	h := &SystemHandler{}
	if cfg.GoogleMaps != nil {
		h.googleMapsAPIKey = cfg.GoogleMaps.APIKey
	}

	return h
}

// ClientConfigResponse is what the map page needs to boot.
type ClientConfigResponse struct {
	GoogleMapsAPIKey string `json:"googleMapsApiKey"`
}

// ClientConfig handles GET /api/config.
func (h *SystemHandler) ClientConfig(c echo.Context) error {
	return response.JSON(c, http.StatusOK, ClientConfigResponse{GoogleMapsAPIKey: h.googleMapsAPIKey})
}
