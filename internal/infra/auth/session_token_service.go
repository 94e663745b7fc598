// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"time"

	"pinmap/config"
	"pinmap/internal/domain/entity"
	"pinmap/internal/domain/service"
	"pinmap/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	sessionIssuer = "pinmap"

	signingKeyInfo = "pinmap session signing key"
	sealingKeyInfo = "pinmap session token sealing key"
)

// ErrInvalidSessionToken is returned for any cookie value that does not verify.
var ErrInvalidSessionToken = errors.New("invalid session token")

// sessionClaims is the JWT payload of the session cookie.
// Provider tokens never appear in clear text; Sealed holds them encrypted.
type sessionClaims struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Sealed string `json:"tok,omitempty"`
	jwt.RegisteredClaims
}

type providerTokens struct {
	AccessToken  string `json:"a"`
	RefreshToken string `json:"r"`
}

// sessionTokenService signs session cookies with HS256 and seals the provider tokens
// with XChaCha20-Poly1305. Both keys are derived from the configured session secret.
type sessionTokenService struct {
	signingKey []byte
	aead       cipher.AEAD
	ttl        time.Duration
	now        func() time.Time
}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return newSessionTokenService([]byte(cfg.Session.Secret), cfg.Session.TTL, time.Now)
}

func newSessionTokenService(secret []byte, ttl time.Duration, now func() time.Time) (*sessionTokenService, error) {
	signingKey, err := deriveKey(secret, signingKeyInfo, sha256.Size)
	if err != nil {
		return nil, err
	}

	sealingKey, err := deriveKey(secret, sealingKeyInfo, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.NewX(sealingKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session cipher")
	}

	return &sessionTokenService{
		signingKey: signingKey,
		aead:       aead,
		ttl:        ttl,
		now:        now,
	}, nil
}

func deriveKey(secret []byte, info string, size int) ([]byte, error) {
	key := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(info)), key); err != nil {
		return nil, errors.Wrap(err, "failed to derive session key")
	}

	return key, nil
}

// Issue signs the session, stamping IssuedAt and ExpiresAt on it.
func (s *sessionTokenService) Issue(session *entity.Session) (string, error) {
	if session == nil || session.UserID == "" {
		return "", errors.New("session must carry a user id")
	}

	now := s.now()
	session.IssuedAt = now.Truncate(time.Second)
	session.ExpiresAt = now.Add(s.ttl).Truncate(time.Second)

	sealed, err := s.seal(session.UserID, providerTokens{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	})
	if err != nil {
		return "", err
	}

	claims := sessionClaims{
		Name:   session.Name,
		Email:  session.Email,
		Sealed: sealed,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   session.UserID,
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session")
	}

	return signed, nil
}

// Parse verifies signature, issuer and expiry, then opens the sealed provider tokens.
func (s *sessionTokenService) Parse(token string) (*entity.Session, error) {
	claims := &sessionClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSessionToken, err.Error())
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(ErrInvalidSessionToken, "missing subject")
	}

	tokens, err := s.open(claims.Subject, claims.Sealed)
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		Identity: entity.Identity{
			UserID: claims.Subject,
			Name:   claims.Name,
			Email:  claims.Email,
		},
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}

// TTL returns the lifetime of a freshly issued session.
func (s *sessionTokenService) TTL() time.Duration {
	return s.ttl
}

// seal binds the ciphertext to the user id so it cannot be replayed in another session.
func (s *sessionTokenService) seal(userID string, tokens providerTokens) (string, error) {
	plaintext, err := json.Marshal(tokens)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode provider tokens")
	}

	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}

	sealed := s.aead.Seal(nonce, nonce, plaintext, []byte(userID))

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (s *sessionTokenService) open(userID, sealed string) (providerTokens, error) {
	var tokens providerTokens
	if sealed == "" {
		return tokens, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil || len(raw) < s.aead.NonceSize() {
		return tokens, errors.Wrap(ErrInvalidSessionToken, "malformed sealed tokens")
	}

	nonce, ciphertext := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, []byte(userID))
	if err != nil {
		return tokens, errors.Wrap(ErrInvalidSessionToken, "sealed tokens do not verify")
	}

	if err := json.Unmarshal(plaintext, &tokens); err != nil {
		return tokens, errors.Wrap(ErrInvalidSessionToken, "malformed provider tokens")
	}

	return tokens, nil
}
