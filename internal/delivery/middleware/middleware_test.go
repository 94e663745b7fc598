package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pinmap/config"
	deliverycontext "pinmap/internal/delivery/context"
	domainerrors "pinmap/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{"generated when absent", "", false},
		{"reused when well formed", "abc-123", true},
		{"replaced when too long", strings.Repeat("a", maxRequestIDLength+1), false},
		{"replaced when it has spaces", "abc 123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.RequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.LoggerFromContext(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.reuse {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
				assert.NotEmpty(t, seen)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	e := echo.New()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(logger, cfg)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=secret-code", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := mw.Handle(func(echo.Context) error {
		return domainerrors.ErrBookmarkNotFound
	})(c)
	assert.ErrorIs(t, err, domainerrors.ErrBookmarkNotFound)

	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.NotContains(t, buf.String(), "secret-code")
}

func TestLoggerMiddleware_Disabled(t *testing.T) {
	e := echo.New()
	buf := &bytes.Buffer{}
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, nil)), &config.Config{})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(echo.Context) error { return nil })(c))

	assert.Empty(t, buf.String())
}
