// Package cookie owns the session and PKCE attempt cookies.
package cookie

import (
	"net/http"
	"time"

	"pinmap/config"

	"github.com/labstack/echo/v4"
)

const (
	attemptCookieSuffix = "_pkce"
	attemptCookiePath   = "/auth"
)

// Manager writes and reads the gateway's cookies. All of them are HttpOnly and
// SameSite=Lax so they survive the top-level redirect back from the identity provider.
type Manager struct {
	sessionName string
	attemptName string
	sessionTTL  time.Duration
	attemptTTL  time.Duration
	secure      bool
}

// NewManager builds the cookie manager from session configuration.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		sessionName: cfg.Session.CookieName,
		attemptName: cfg.Session.CookieName + attemptCookieSuffix,
		sessionTTL:  cfg.Session.TTL,
		attemptTTL:  cfg.Session.VerifierTTL,
		secure:      cfg.Session.Secure,
	}
}

// SessionName returns the session cookie name.
func (m *Manager) SessionName() string {
	return m.sessionName
}

// ReadSession returns the raw session cookie value, or "" when absent.
func (m *Manager) ReadSession(c echo.Context) string {
	return m.read(c, m.sessionName)
}

// SetSession writes the signed session.
func (m *Manager) SetSession(c echo.Context, token string) {
	c.SetCookie(m.build(m.sessionName, token, "/", m.sessionTTL))
}

// ClearSession expires the session cookie.
func (m *Manager) ClearSession(c echo.Context) {
	c.SetCookie(m.build(m.sessionName, "", "/", -1))
}

// ReadAttempt returns the PKCE attempt id, or "" when absent.
func (m *Manager) ReadAttempt(c echo.Context) string {
	return m.read(c, m.attemptName)
}

// SetAttempt writes the PKCE attempt id, scoped to the auth routes.
func (m *Manager) SetAttempt(c echo.Context, attemptID string) {
	c.SetCookie(m.build(m.attemptName, attemptID, attemptCookiePath, m.attemptTTL))
}

// ClearAttempt expires the PKCE attempt cookie.
func (m *Manager) ClearAttempt(c echo.Context) {
	c.SetCookie(m.build(m.attemptName, "", attemptCookiePath, -1))
}

func (m *Manager) read(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// build creates a cookie; a negative ttl deletes it.
func (m *Manager) build(name, value, path string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}

	if ttl < 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)

		return cookie
	}

	cookie.MaxAge = int(ttl.Seconds())
	cookie.Expires = time.Now().Add(ttl)

	return cookie
}
