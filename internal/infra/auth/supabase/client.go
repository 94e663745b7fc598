// Package supabase talks to the Supabase GoTrue auth API for PKCE sign-in.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"pinmap/config"
	"pinmap/internal/domain/entity"
	"pinmap/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	authorizePath = "/auth/v1/authorize"
	tokenPath     = "/auth/v1/token"
	logoutPath    = "/auth/v1/logout"

	challengeMethodS256 = "s256"
	maxErrorBodyBytes   = 512
)

// Client implements service.IdentityProvider against GoTrue.
type Client struct {
	baseURL    string
	anonKey    string
	provider   string
	httpClient *http.Client
}

// NewIdentityProvider creates a GoTrue client from the supabase configuration.
func NewIdentityProvider(cfg *config.Config) service.IdentityProvider {
	return NewClient(cfg.Supabase, &http.Client{Timeout: cfg.Supabase.RequestTimeout})
}

// NewClient creates a GoTrue client using httpClient for every call.
func NewClient(cfg *config.SupabaseConfig, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		anonKey:    cfg.AnonKey,
		provider:   cfg.Provider,
		httpClient: httpClient,
	}
}

// BeginPKCE generates a fresh verifier and builds the provider authorization URL
// carrying its S256 challenge.
func (c *Client) BeginPKCE(redirectTo string) (*service.AuthorizationRequest, error) {
	if redirectTo == "" {
		return nil, errors.New("redirect URL is required")
	}

	verifier := oauth2.GenerateVerifier()

	params := url.Values{}
	params.Set("provider", c.provider)
	params.Set("redirect_to", redirectTo)
	params.Set("code_challenge", oauth2.S256ChallengeFromVerifier(verifier))
	params.Set("code_challenge_method", challengeMethodS256)

	return &service.AuthorizationRequest{
		URL:      c.baseURL + authorizePath + "?" + params.Encode(),
		Verifier: verifier,
	}, nil
}

type tokenResponse struct {
	AccessToken  string        `json:"access_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int           `json:"expires_in"`
	RefreshToken string        `json:"refresh_token"`
	User         *userResponse `json:"user"`
}

type userResponse struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// ExchangeCodeForSession trades the authorization code and verifier for a session.
// An empty response body decodes to a nil session.
func (c *Client) ExchangeCodeForSession(ctx context.Context, verifier, code string) (*entity.ProviderSession, error) {
	body, err := json.Marshal(map[string]string{
		"auth_code":     code,
		"code_verifier": verifier,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode token exchange request")
	}

	endpoint := c.baseURL + tokenPath + "?" + url.Values{"grant_type": {"pkce"}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/json")
	c.authorize(req, c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for session")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, readErrorBody(resp.Body))
	}

	var tokenResp *tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to decode token response")
	}

	if tokenResp == nil || tokenResp.AccessToken == "" {
		return nil, nil
	}

	session := &entity.ProviderSession{
		AccessToken:  tokenResp.AccessToken,
		RefreshToken: tokenResp.RefreshToken,
		ExpiresIn:    tokenResp.ExpiresIn,
	}
	if tokenResp.User != nil && tokenResp.User.ID != "" {
		session.User = &entity.ProviderUser{
			ID:           tokenResp.User.ID,
			Email:        tokenResp.User.Email,
			UserMetadata: tokenResp.User.UserMetadata,
		}
	}

	return session, nil
}

// SignOut revokes the provider session behind accessToken.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+logoutPath, http.NoBody)
	if err != nil {
		return errors.Wrap(err, "failed to create logout request")
	}

	c.authorize(req, accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to sign out")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return errors.Errorf("sign out failed with status %d: %s", resp.StatusCode, readErrorBody(resp.Body))
	}

	return nil
}

func (c *Client) authorize(req *http.Request, bearer string) {
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
}

func readErrorBody(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))

	return strings.TrimSpace(string(raw))
}
