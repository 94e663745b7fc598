package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultSessionCookieName  = "pinmap_session"
	defaultSessionTTL         = 14 * 24 * time.Hour
	defaultVerifierTTL        = 10 * time.Minute
	defaultMaxPendingLogins   = 10000
	defaultDisplayName        = "DiscordUser"
	defaultIdentityProvider   = "discord"
	defaultIdentityTimeout    = 10 * time.Second
	defaultQRCodeSize         = 256
	defaultQRErrorCorrection  = "M"
	defaultRateLimitPerSecond = 5
	defaultRateLimitBurst     = 10

	minSessionSecretLength = 32
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// PublicBaseURL overrides the scheme://host used for OAuth redirects and share links.
		PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
		// StaticDir serves the browser front-end when set.
		StaticDir string `json:"staticDir" yaml:"staticDir"`
		Timeouts  struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// GoogleMaps is handed to the browser map client
	GoogleMaps *GoogleMapsConfig `json:"googleMaps" yaml:"googleMaps"`

	Share *ShareConfig `json:"share" yaml:"share"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// SupabaseConfig points at the hosted auth + database project.
type SupabaseConfig struct {
	URL     string `json:"url" yaml:"url"`
	AnonKey string `json:"anonKey" yaml:"anonKey"`
	// Provider is the external OAuth provider GoTrue delegates to (discord, github, ...).
	Provider       string        `json:"provider" yaml:"provider"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// SessionConfig defines the signed session cookie and the PKCE verifier lifetime.
type SessionConfig struct {
	Secret      string        `json:"secret" yaml:"secret"`
	CookieName  string        `json:"cookieName" yaml:"cookieName"`
	TTL         time.Duration `json:"ttl" yaml:"ttl"`
	Secure      bool          `json:"secure" yaml:"secure"`
	VerifierTTL time.Duration `json:"verifierTtl" yaml:"verifierTtl"`
	// MaxPendingLogins bounds the verifiers held between login and callback.
	MaxPendingLogins int `json:"maxPendingLogins" yaml:"maxPendingLogins"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	DefaultDisplayName string `json:"defaultDisplayName" yaml:"defaultDisplayName"`
}

type GoogleMapsConfig struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`
}

// ShareConfig defines share link and QR code generation
type ShareConfig struct {
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
	QRSize               int    `json:"qrSize" yaml:"qrSize"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// RateLimitConfig throttles the /auth endpoints per client IP
type RateLimitConfig struct {
	Enabled           bool    `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SUPABASE_ANON_KEY -> supabase.anonKey, POSTGRES_SSLMODE -> postgres.sslMode
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Supabase != nil {
		if cfg.Supabase.Provider == "" {
			cfg.Supabase.Provider = defaultIdentityProvider
		}
		if cfg.Supabase.RequestTimeout <= 0 {
			cfg.Supabase.RequestTimeout = defaultIdentityTimeout
		}
		cfg.Supabase.URL = strings.TrimRight(cfg.Supabase.URL, "/")
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.VerifierTTL <= 0 {
		cfg.Session.VerifierTTL = defaultVerifierTTL
	}
	if cfg.Session.MaxPendingLogins <= 0 {
		cfg.Session.MaxPendingLogins = defaultMaxPendingLogins
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.DefaultDisplayName == "" {
		cfg.Auth.DefaultDisplayName = defaultDisplayName
	}

	if cfg.GoogleMaps == nil {
		cfg.GoogleMaps = &GoogleMapsConfig{}
	}

	if cfg.Share == nil {
		cfg.Share = &ShareConfig{}
	}
	if cfg.Share.QRSize <= 0 {
		cfg.Share.QRSize = defaultQRCodeSize
	}
	if cfg.Share.ErrorCorrectionLevel == "" {
		cfg.Share.ErrorCorrectionLevel = defaultQRErrorCorrection
	}

	// Without a rateLimit block the /auth endpoints are still throttled.
	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{Enabled: true}
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		cfg.RateLimit.RequestsPerSecond = defaultRateLimitPerSecond
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = defaultRateLimitBurst
	}
}

// Validate reports the first missing value the service cannot start without.
func (cfg *Config) Validate() error {
	if cfg.Supabase == nil || strings.TrimSpace(cfg.Supabase.URL) == "" {
		return errors.New("supabase.url is required (SUPABASE_URL)")
	}
	if strings.TrimSpace(cfg.Supabase.AnonKey) == "" {
		return errors.New("supabase.anonKey is required (SUPABASE_ANON_KEY)")
	}
	if cfg.Session == nil || len(cfg.Session.Secret) < minSessionSecretLength {
		return errors.Errorf("session.secret must be at least %d bytes (SESSION_SECRET)", minSessionSecretLength)
	}
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is required")
	}

	return nil
}

// canonicalizeEnvKey maps an environment variable name onto the key path of the loaded YAML.
// Adjacent segments are merged when their concatenation names an existing key, so
// GOOGLE_MAPS_API_KEY resolves to googleMaps.apiKey. Unknown segments are kept as-is.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := make([]string, 0)
	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	canonical := make([]string, 0, len(segments))
	current := existing

	for i := 0; i < len(segments); {
		matched, next, width := findExistingSegment(current, segments[i:])
		if width == 0 {
			canonical = append(canonical, segments[i])
			current = nil
			i++

			continue
		}

		canonical = append(canonical, matched)
		current = next
		i += width
	}

	return strings.Join(canonical, ".")
}

// findExistingSegment tries the longest run of segments first and returns how many it consumed.
func findExistingSegment(current map[string]any, segments []string) (matched string, next map[string]any, width int) {
	if len(current) == 0 {
		return "", nil, 0
	}

	for n := len(segments); n > 0; n-- {
		needle := normalizeToken(strings.Join(segments[:n], ""))
		for key, value := range current {
			if normalizeToken(key) != needle {
				continue
			}

			child, _ := value.(map[string]any)

			return key, child, n
		}
	}

	return "", nil, 0
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
