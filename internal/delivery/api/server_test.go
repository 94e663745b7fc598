package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pinmap/config"
	"pinmap/internal/delivery/api/cookie"
	apimiddleware "pinmap/internal/delivery/api/middleware"
	"pinmap/internal/delivery/api/router"
	"pinmap/internal/delivery/api/router/handler"
	deliverycontext "pinmap/internal/delivery/context"
	"pinmap/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, staticDir string) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Session:    &config.SessionConfig{CookieName: "pinmap_session", TTL: time.Hour, VerifierTTL: time.Minute},
		GoogleMaps: &config.GoogleMapsConfig{},
	}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.StaticDir = staticDir
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cookies := cookie.NewManager(cfg)

	return newEcho(cfg, logger, router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{Cookies: cookies, Config: cfg, Logger: logger}),
		BookmarkHandler:     handler.NewBookmarkHandler(handler.BookmarkHandlerParams{Logger: logger}),
		ShareHandler:        handler.NewShareHandler(handler.ShareHandlerParams{Config: cfg}),
		SystemHandler:       handler.NewSystemHandler(cfg),
		SessionMiddleware:   apimiddleware.NewSessionMiddleware(nil, cookies),
		RateLimitMiddleware: apimiddleware.NewRateLimitMiddleware(ratelimit.NewKeyedRateLimiter(10, 10, time.Now), logger),
		Config:              cfg,
	})
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthAndRequestID(t *testing.T) {
	e := newTestEcho(t, "")

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_UnknownRouteWithoutStatic(t *testing.T) {
	e := newTestEcho(t, "")

	rec := serve(e, http.MethodGet, "/nowhere", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_BodyLimit(t *testing.T) {
	e := newTestEcho(t, "")

	rec := serve(e, http.MethodPost, "/api/bookmarks", `{"name":"`+strings.Repeat("x", 2048)+`"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_StaticFrontEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>pinmap</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('map')"), 0o600))

	e := newTestEcho(t, dir)

	rec := serve(e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pinmap")

	rec = serve(e, http.MethodGet, "/app.js", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console.log")

	rec = serve(e, http.MethodGet, "/login", "")
	assert.Equal(t, http.StatusOK, rec.Code, "client routes fall back to index.html")
	assert.Contains(t, rec.Body.String(), "pinmap")

	rec = serve(e, http.MethodGet, "/api/bookmarks", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "API routes are never shadowed by the front-end")

	rec = serve(e, http.MethodGet, "/health", "")
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
