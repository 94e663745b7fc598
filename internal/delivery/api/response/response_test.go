package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "pinmap/internal/delivery/context"
	domainerrors "pinmap/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(deliverycontext.WithRequestScope(req.Context(), "req-1", slog.Default()))
	c := e.NewContext(req, rec)

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandleAppError(t *testing.T) {
	t.Run("client error keeps details", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("name is required")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "name is required", body.Error.Details)
		assert.Equal(t, "req-1", body.Meta.RequestID)
	})

	t.Run("server error drops details", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, HandleAppError(c, domainerrors.ErrBookmarkSaveFailed.WithDetails("pq: disk full")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "Failed to save bookmark. Please try again.", body.Error.Message)
		assert.Nil(t, body.Error.Details)
		assert.NotContains(t, rec.Body.String(), "disk full")
	})

	t.Run("wrapped app error", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrBookmarkNotFound, "lookup")))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("plain error is passed on", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, errors.New("boom"))
		assert.Error(t, err)
		assert.Equal(t, 0, rec.Body.Len())
	})
}

func TestValidationFailed(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, ValidationFailed(c, map[string]string{"lat": "max=90"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, map[string]any{"lat": "max=90"}, body.Error.Details)
}

func TestInternal(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Internal(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}
