package middleware

import (
	"log/slog"

	"pinmap/internal/delivery/api/cookie"
	deliverycontext "pinmap/internal/delivery/context"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the signed session cookie into the request context.
type SessionMiddleware struct {
	authUC  usecase.AuthUsecase
	cookies *cookie.Manager
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(authUC usecase.AuthUsecase, cookies *cookie.Manager) *SessionMiddleware {
	return &SessionMiddleware{authUC: authUC, cookies: cookies}
}

// Authenticate rejects requests without a valid session with 401.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.resolve(c) {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// Load resolves the session when present but lets anonymous requests through.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.resolve(c)

		return next(c)
	}
}

// resolve stores the session on success and slides the cookie when it was renewed.
// A cookie that no longer verifies is cleared.
func (m *SessionMiddleware) resolve(c echo.Context) bool {
	token := m.cookies.ReadSession(c)
	if token == "" {
		return false
	}

	resolved, err := m.authUC.ResolveSession(c.Request().Context(), token)
	if err != nil {
		m.cookies.ClearSession(c)

		return false
	}

	if resolved.RenewedToken != "" {
		m.cookies.SetSession(c, resolved.RenewedToken)
	}
	deliverycontext.SetSession(c, resolved.Session)
	c.SetRequest(c.Request().WithContext(
		deliverycontext.WithLogAttrs(c.Request().Context(), slog.String("user_id", resolved.Session.UserID)),
	))

	return true
}
