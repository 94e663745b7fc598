// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"pinmap/config"
	deliverycontext "pinmap/internal/delivery/context"
	"pinmap/internal/domain/entity"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/domain/service"
	"pinmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	identityProvider   service.IdentityProvider
	verifierStore      service.VerifierStore
	tokenService       service.SessionTokenService
	defaultDisplayName string
	logger             *slog.Logger
	now                func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	IdentityProvider service.IdentityProvider
	VerifierStore    service.VerifierStore
	TokenService     service.SessionTokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	defaultDisplayName := ""
	if params.Config != nil && params.Config.Auth != nil {
		defaultDisplayName = params.Config.Auth.DefaultDisplayName
	}

	return &authService{
		identityProvider:   params.IdentityProvider,
		verifierStore:      params.VerifierStore,
		tokenService:       params.TokenService,
		defaultDisplayName: defaultDisplayName,
		logger:             params.Logger,
		now:                time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginLogin prepares the PKCE pair and parks the verifier under a new attempt id.
func (srv *authService) BeginLogin(ctx context.Context, redirectTo string) (*usecase.LoginAttempt, error) {
	authReq, err := srv.identityProvider.BeginPKCE(redirectTo)
	if err != nil {
		srv.log(ctx).Error("Failed to prepare PKCE login", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	attemptID := uuid.NewString()
	srv.verifierStore.Put(attemptID, authReq.Verifier)

	srv.log(ctx).Debug("PKCE login started", slog.String("attempt_id", attemptID))

	return &usecase.LoginAttempt{
		AttemptID:        attemptID,
		AuthorizationURL: authReq.URL,
	}, nil
}

// CompleteLogin exchanges the code with the parked verifier and signs the local session.
func (srv *authService) CompleteLogin(ctx context.Context, input *usecase.CompleteLoginInput) (*usecase.SignedSession, error) {
	if input.Code == "" {
		return nil, domainerrors.ErrMissingCode
	}

	verifier, ok := "", false
	if input.AttemptID != "" {
		verifier, ok = srv.verifierStore.Consume(input.AttemptID)
	}
	if !ok {
		return nil, domainerrors.ErrMissingVerifier
	}

	providerSession, err := srv.identityProvider.ExchangeCodeForSession(ctx, verifier, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrSignInFailed
	}
	if providerSession == nil || providerSession.User == nil {
		srv.log(ctx).Warn("Code exchange returned no user", slog.Bool("has_session", providerSession != nil))

		return nil, domainerrors.ErrSignInFailed
	}

	session := &entity.Session{
		Identity: entity.Identity{
			UserID: providerSession.User.ID,
			Name:   providerSession.User.DisplayName(srv.defaultDisplayName),
			Email:  providerSession.User.Email,
		},
		AccessToken:  providerSession.AccessToken,
		RefreshToken: providerSession.RefreshToken,
	}

	token, err := srv.tokenService.Issue(session)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session", slog.Any("error", err))

		return nil, domainerrors.ErrSignInFailed
	}

	srv.log(ctx).Info("User signed in", slog.String("user_id", session.UserID))

	return &usecase.SignedSession{Session: session, Token: token}, nil
}

// ResolveSession verifies the cookie value and re-issues it once less than half of
// its lifetime remains.
func (srv *authService) ResolveSession(ctx context.Context, token string) (*usecase.ResolvedSession, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	session, err := srv.tokenService.Parse(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session cookie", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthenticated
	}

	resolved := &usecase.ResolvedSession{Session: session}

	if session.ExpiresAt.Sub(srv.now()) >= srv.tokenService.TTL()/2 {
		return resolved, nil
	}

	renewed, err := srv.tokenService.Issue(session)
	if err != nil {
		// The current cookie is still valid; keep serving it.
		srv.log(ctx).Warn("Failed to renew session", slog.Any("error", err))

		return resolved, nil
	}
	resolved.RenewedToken = renewed

	return resolved, nil
}

// Logout revokes the provider session. Failures are logged and swallowed.
func (srv *authService) Logout(ctx context.Context, session *entity.Session) {
	if session == nil || session.AccessToken == "" {
		return
	}

	if err := srv.identityProvider.SignOut(ctx, session.AccessToken); err != nil {
		srv.log(ctx).Warn("Failed to revoke provider session",
			slog.String("user_id", session.UserID),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Info("User signed out", slog.String("user_id", session.UserID))
}
