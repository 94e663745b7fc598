package entity

import "time"

// Identity is the authenticated caller resolved from the session cookie.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

// Session is what the signed session cookie carries.
// AccessToken and RefreshToken are the identity provider's tokens, kept for logout.
type Session struct {
	Identity

	AccessToken  string
	RefreshToken string
	IssuedAt     time.Time
	ExpiresAt    time.Time
}

// ProviderSession is the result of a successful authorization code exchange.
type ProviderSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	User         *ProviderUser
}

// ProviderUser is the identity provider's view of the signed-in user.
type ProviderUser struct {
	ID           string
	Email        string
	UserMetadata map[string]any
}

// DisplayName returns the "name" metadata claim, or fallback when absent or blank.
func (u *ProviderUser) DisplayName(fallback string) string {
	if u == nil || u.UserMetadata == nil {
		return fallback
	}

	if name, ok := u.UserMetadata["name"].(string); ok && name != "" {
		return name
	}

	return fallback
}
