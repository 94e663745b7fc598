package service

import (
	"time"

	"pinmap/internal/domain/entity"
)

// SessionTokenService signs and verifies the session cookie value.
type SessionTokenService interface {
	// Issue signs the session, stamping IssuedAt and ExpiresAt from now.
	Issue(session *entity.Session) (string, error)

	// Parse verifies the token and returns the session it carries.
	Parse(token string) (*entity.Session, error)

	// TTL returns the lifetime of a freshly issued session.
	TTL() time.Duration
}
