package usecase

import (
	"context"

	"pinmap/internal/domain/entity"
)

// LoginAttempt is a started PKCE login: the browser is sent to AuthorizationURL and
// carries AttemptID back to the callback.
type LoginAttempt struct {
	AttemptID        string
	AuthorizationURL string
}

// CompleteLoginInput holds what the OAuth callback received.
type CompleteLoginInput struct {
	AttemptID string
	Code      string
}

// SignedSession is a session together with its signed cookie value.
type SignedSession struct {
	Session *entity.Session
	Token   string
}

// ResolvedSession is the outcome of validating an incoming session cookie.
// RenewedToken is non-empty when the cookie was re-issued to slide its expiry.
type ResolvedSession struct {
	Session      *entity.Session
	RenewedToken string
}

// AuthUsecase defines the session gateway use cases.
type AuthUsecase interface {
	// BeginLogin starts a PKCE login that returns to redirectTo.
	BeginLogin(ctx context.Context, redirectTo string) (*LoginAttempt, error)

	// CompleteLogin exchanges the callback code for a provider session and signs a local session.
	CompleteLogin(ctx context.Context, input *CompleteLoginInput) (*SignedSession, error)

	// ResolveSession verifies a session cookie value, renewing it past half its lifetime.
	ResolveSession(ctx context.Context, token string) (*ResolvedSession, error)

	// Logout revokes the provider session when one is known. It never fails.
	Logout(ctx context.Context, session *entity.Session)
}
