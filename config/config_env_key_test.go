package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"supabase": map[string]any{
			"url":     "",
			"anonKey": "",
		},
		"googleMaps": map[string]any{
			"apiKey": "",
		},
		"session": map[string]any{
			"secret":      "",
			"verifierTtl": "10m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SUPABASE_URL", want: "supabase.url"},
		{envKey: "SUPABASE_ANON_KEY", want: "supabase.anonKey"},
		{envKey: "SUPABASE_ANONKEY", want: "supabase.anonKey"},
		{envKey: "GOOGLE_MAPS_API_KEY", want: "googleMaps.apiKey"},
		{envKey: "SESSION_VERIFIER_TTL", want: "session.verifierTtl"},
		{envKey: "SESSION_SECRET", want: "session.secret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
		{envKey: "SUPABASE__URL", want: "supabase.url"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
