package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"pinmap/config"
	"pinmap/internal/delivery/api/cookie"
	"pinmap/internal/delivery/api/response"
	deliverycontext "pinmap/internal/delivery/context"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	callbackPath  = "/auth/callback"
	loginPagePath = "/login"
	homePath      = "/"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Cookies *cookie.Manager
	Config  *config.Config
	Logger  *slog.Logger
}

// AuthHandler drives the PKCE login flow and the session cookie.
type AuthHandler struct {
	authUC        usecase.AuthUsecase
	cookies       *cookie.Manager
	publicBaseURL string
	logger        *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:        params.AuthUC,
		cookies:       params.Cookies,
		publicBaseURL: params.Config.HTTP.PublicBaseURL,
		logger:        params.Logger,
	}
}

// CurrentUserResponse is the signed-in user as seen by the browser.
type CurrentUserResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Login starts a PKCE login and redirects to the identity provider.
func (h *AuthHandler) Login(c echo.Context) error {
	redirectTo := requestOrigin(c, h.publicBaseURL) + callbackPath

	attempt, err := h.authUC.BeginLogin(c.Request().Context(), redirectTo)
	if err != nil {
		return err
	}

	h.cookies.SetAttempt(c, attempt.AttemptID)

	return c.Redirect(http.StatusFound, attempt.AuthorizationURL)
}

// Callback completes the login. Provider errors and failed exchanges go back to the
// login page; a missing code or verifier is a 400.
func (h *AuthHandler) Callback(c echo.Context) error {
	if providerErr := c.QueryParam("error"); providerErr != "" {
		if h.cookies.ReadAttempt(c) != "" {
			h.cookies.ClearAttempt(c)
		}

		return c.Redirect(http.StatusFound, loginPagePath+"?error="+url.QueryEscape(providerErr))
	}

	input := &usecase.CompleteLoginInput{
		AttemptID: h.cookies.ReadAttempt(c),
		Code:      c.QueryParam("code"),
	}

	signed, err := h.authUC.CompleteLogin(c.Request().Context(), input)
	if input.AttemptID != "" {
		h.cookies.ClearAttempt(c)
	}
	if err != nil {
		if errors.Is(err, domainerrors.ErrSignInFailed) {
			return c.Redirect(http.StatusFound, loginPagePath+"?error="+url.QueryEscape(domainerrors.ErrSignInFailed.Message()))
		}

		return err
	}

	h.cookies.SetSession(c, signed.Token)

	return c.Redirect(http.StatusFound, homePath)
}

// Logout revokes the provider session when one is loaded, clears the cookie and
// redirects home. It always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	session, _ := deliverycontext.GetSession(c)
	h.authUC.Logout(c.Request().Context(), session)
	h.cookies.ClearSession(c)

	return c.Redirect(http.StatusFound, homePath)
}

// Me returns the signed-in user.
func (h *AuthHandler) Me(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	return response.JSON(c, http.StatusOK, CurrentUserResponse{
		UserID: session.UserID,
		Name:   session.Name,
		Email:  session.Email,
	})
}
