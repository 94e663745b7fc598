package context

import (
	"pinmap/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the echo.Context key of the resolved session.
const KeySession ContextKey = "session"

// SetSession stores the resolved session in echo.Context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the session resolved for this request, if any.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(*entity.Session)
	if !ok || session == nil {
		return nil, false
	}

	return session, true
}

// GetUserID returns the caller's user id, or false when the request is anonymous.
func GetUserID(c echo.Context) (string, bool) {
	session, ok := GetSession(c)
	if !ok || session.UserID == "" {
		return "", false
	}

	return session.UserID, true
}
