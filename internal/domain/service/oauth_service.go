package service

import (
	"context"

	"pinmap/internal/domain/entity"
)

// AuthorizationRequest is a prepared PKCE login: where to send the browser and the
// verifier that must be presented with the returned code.
type AuthorizationRequest struct {
	URL      string
	Verifier string
}

// IdentityProvider defines the external OAuth/PKCE identity provider.
type IdentityProvider interface {
	// BeginPKCE generates a verifier/challenge pair and builds the authorization URL
	// that sends the user back to redirectTo.
	BeginPKCE(redirectTo string) (*AuthorizationRequest, error)

	// ExchangeCodeForSession trades the authorization code and verifier for a session.
	// A nil session or a session without user means the sign-in did not complete.
	ExchangeCodeForSession(ctx context.Context, verifier, code string) (*entity.ProviderSession, error)

	// SignOut revokes the provider session behind accessToken.
	SignOut(ctx context.Context, accessToken string) error
}

// VerifierStore keeps PKCE verifiers between the login redirect and the callback.
type VerifierStore interface {
	// Put stores verifier under attemptID until it expires.
	Put(attemptID, verifier string)

	// Consume returns and removes the verifier. A second call for the same attempt,
	// or a call after expiry, reports false.
	Consume(attemptID string) (string, bool)
}
