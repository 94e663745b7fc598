// Package handler contains the echo handlers of the API delivery.
package handler

import (
	"net/http"
	"strings"

	deliverycontext "pinmap/internal/delivery/context"
	domainerrors "pinmap/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the caller's user id resolved by the session middleware.
func getUserID(c echo.Context) (string, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return "", domainerrors.ErrUnauthenticated
	}

	return userID, nil
}

// requestOrigin returns publicBaseURL when set, else scheme://host of the request.
func requestOrigin(c echo.Context, publicBaseURL string) string {
	if publicBaseURL != "" {
		return strings.TrimRight(publicBaseURL, "/")
	}

	return c.Scheme() + "://" + c.Request().Host
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
