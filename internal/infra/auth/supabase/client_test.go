package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"pinmap/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const testAnonKey = "anon-key"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.SupabaseConfig{
		URL:      server.URL + "/",
		AnonKey:  testAnonKey,
		Provider: "discord",
	}, server.Client())
}

func TestNewIdentityProvider(t *testing.T) {
	provider := NewIdentityProvider(&config.Config{
		Supabase: &config.SupabaseConfig{
			URL:            "https://project.supabase.co",
			AnonKey:        testAnonKey,
			Provider:       "discord",
			RequestTimeout: 3 * time.Second,
		},
	})

	client, ok := provider.(*Client)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, client.httpClient.Timeout)
}

func TestClient_BeginPKCE(t *testing.T) {
	client := NewClient(&config.SupabaseConfig{
		URL:      "https://project.supabase.co/",
		AnonKey:  testAnonKey,
		Provider: "discord",
	}, http.DefaultClient)

	req, err := client.BeginPKCE("https://app.example.com/auth/callback")
	require.NoError(t, err)
	assert.NotEmpty(t, req.Verifier)

	parsed, err := url.Parse(req.URL)
	require.NoError(t, err)
	assert.Equal(t, "project.supabase.co", parsed.Host)
	assert.Equal(t, "/auth/v1/authorize", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "discord", query.Get("provider"))
	assert.Equal(t, "https://app.example.com/auth/callback", query.Get("redirect_to"))
	assert.Equal(t, "s256", query.Get("code_challenge_method"))
	assert.Equal(t, oauth2.S256ChallengeFromVerifier(req.Verifier), query.Get("code_challenge"))

	other, err := client.BeginPKCE("https://app.example.com/auth/callback")
	require.NoError(t, err)
	assert.NotEqual(t, req.Verifier, other.Verifier, "every attempt gets a fresh verifier")

	_, err = client.BeginPKCE("")
	assert.Error(t, err)
}

func TestClient_ExchangeCodeForSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/v1/token", r.URL.Path)
			assert.Equal(t, "pkce", r.URL.Query().Get("grant_type"))
			assert.Equal(t, testAnonKey, r.Header.Get("apikey"))
			assert.Equal(t, "Bearer "+testAnonKey, r.Header.Get("Authorization"))

			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "the-code", body["auth_code"])
			assert.Equal(t, "the-verifier", body["code_verifier"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"access_token": "at",
				"token_type": "bearer",
				"expires_in": 3600,
				"refresh_token": "rt",
				"user": {"id": "user-1", "email": "ada@example.com", "user_metadata": {"name": "Ada"}}
			}`))
		})

		session, err := client.ExchangeCodeForSession(context.Background(), "the-verifier", "the-code")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "at", session.AccessToken)
		assert.Equal(t, "rt", session.RefreshToken)
		assert.Equal(t, 3600, session.ExpiresIn)
		require.NotNil(t, session.User)
		assert.Equal(t, "user-1", session.User.ID)
		assert.Equal(t, "ada@example.com", session.User.Email)
		assert.Equal(t, "Ada", session.User.DisplayName("fallback"))
	})

	t.Run("session without user", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"access_token": "at"}`))
		})

		session, err := client.ExchangeCodeForSession(context.Background(), "v", "c")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Nil(t, session.User)
	})

	t.Run("null session", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`null`))
		})

		session, err := client.ExchangeCodeForSession(context.Background(), "v", "c")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("rejected code", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"code verifier mismatch"}`))
		})

		session, err := client.ExchangeCodeForSession(context.Background(), "v", "c")
		assert.Nil(t, session)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "400")
		assert.Contains(t, err.Error(), "invalid_grant")
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		})

		_, err := client.ExchangeCodeForSession(context.Background(), "v", "c")
		assert.Error(t, err)
	})
}

func TestClient_SignOut(t *testing.T) {
	t.Run("revokes with the user token", func(t *testing.T) {
		called := false
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/v1/logout", r.URL.Path)
			assert.Equal(t, testAnonKey, r.Header.Get("apikey"))
			assert.Equal(t, "Bearer user-access", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, client.SignOut(context.Background(), "user-access"))
		assert.True(t, called)
	})

	t.Run("upstream failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		assert.Error(t, client.SignOut(context.Background(), "expired"))
	})
}
