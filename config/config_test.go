package config

import (
	"strings"
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{
		Postgres: &postgres.DBConn{},
		Supabase: &SupabaseConfig{URL: "https://project.supabase.co/", AnonKey: "anon"},
		Session:  &SessionConfig{Secret: strings.Repeat("s", minSessionSecretLength)},
	}
	cfg.applyDefaults()

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing supabase block", mutate: func(cfg *Config) { cfg.Supabase = nil }, wantErr: "supabase.url"},
		{name: "missing supabase url", mutate: func(cfg *Config) { cfg.Supabase.URL = " " }, wantErr: "supabase.url"},
		{name: "missing anon key", mutate: func(cfg *Config) { cfg.Supabase.AnonKey = "" }, wantErr: "supabase.anonKey"},
		{name: "short session secret", mutate: func(cfg *Config) { cfg.Session.Secret = "short" }, wantErr: "session.secret"},
		{name: "missing postgres", mutate: func(cfg *Config) { cfg.Postgres = nil }, wantErr: "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, "https://project.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, defaultIdentityProvider, cfg.Supabase.Provider)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, defaultVerifierTTL, cfg.Session.VerifierTTL)
	assert.Equal(t, defaultMaxPendingLogins, cfg.Session.MaxPendingLogins)
	assert.Equal(t, defaultDisplayName, cfg.Auth.DefaultDisplayName)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultQRCodeSize, cfg.Share.QRSize)
	assert.NotNil(t, cfg.GoogleMaps)
	require.NotNil(t, cfg.RateLimit)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, float64(defaultRateLimitPerSecond), cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, defaultRateLimitBurst, cfg.RateLimit.Burst)
}

func TestConfig_ApplyDefaultsKeepsDisabledRateLimit(t *testing.T) {
	cfg := &Config{RateLimit: &RateLimitConfig{Enabled: false}}
	cfg.applyDefaults()

	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, defaultRateLimitBurst, cfg.RateLimit.Burst)
}
