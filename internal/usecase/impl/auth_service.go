package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"time"

	"checkin/config"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	"checkin/internal/domain/service"
	"checkin/internal/usecase"

	"github.com/pkg/errors"
)

const oauthStateBytes = 32

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	oauthSvc     service.OAuthService
	stateStore   service.StateStore
	tokenStore   service.TokenStore
	sessionToken service.SessionTokenService
	revocations  service.SessionRevocationStore
	stateTTL     time.Duration
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	userRepo repository.UserRepository,
	oauthSvc service.OAuthService,
	stateStore service.StateStore,
	tokenStore service.TokenStore,
	sessionToken service.SessionTokenService,
	revocations service.SessionRevocationStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	stateTTL := 10 * time.Minute
	if cfg.Session != nil && cfg.Session.StateTTL > 0 {
		stateTTL = cfg.Session.StateTTL
	}

	return &authService{
		userRepo:     userRepo,
		oauthSvc:     oauthSvc,
		stateStore:   stateStore,
		tokenStore:   tokenStore,
		sessionToken: sessionToken,
		revocations:  revocations,
		stateTTL:     stateTTL,
		logger:       logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) BeginLogin(ctx context.Context) (string, error) {
	buf := make([]byte, oauthStateBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}
	state := base64.RawURLEncoding.EncodeToString(buf)

	if err := srv.stateStore.Save(ctx, state, srv.stateTTL); err != nil {
		return "", errors.Wrap(err, "failed to save oauth state")
	}

	return srv.oauthSvc.AuthCodeURL(state), nil
}

func (srv *authService) CompleteLogin(ctx context.Context, input usecase.CompleteLoginInput) (*usecase.CompleteLoginOutput, error) {
	if input.ProviderError != "" {
		srv.log(ctx).Warn("Identity provider returned an error", slog.String("provider_error", input.ProviderError))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage(input.ProviderError)
	}

	if input.State == "" {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	valid, err := srv.stateStore.Consume(ctx, input.State)
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume oauth state")
	}
	if !valid {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	identity, err := srv.oauthSvc.Exchange(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		ID:      identity.ID,
		Email:   identity.Email,
		Name:    identity.Name,
		Picture: identity.AvatarURL,
	}
	if err := srv.userRepo.Upsert(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to upsert user")
	}

	bearer, err := srv.tokenStore.Issue(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue bearer token")
	}

	session, err := srv.sessionToken.GenerateSessionToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("User signed in", slog.String("user_id", user.ID))

	return &usecase.CompleteLoginOutput{
		User:         user,
		BearerToken:  bearer,
		SessionToken: session,
		SessionTTL:   srv.sessionToken.SessionDuration(),
	}, nil
}

// Logout revokes every credential presented: the bearer token and, when the
// session token still verifies, its ID until the token would have expired.
func (srv *authService) Logout(ctx context.Context, creds usecase.Credentials) error {
	if creds.SessionToken != "" {
		claims, err := srv.sessionToken.ValidateSessionToken(creds.SessionToken)
		if err == nil && claims.ID != "" && claims.ExpiresAt != nil {
			if err := srv.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
				return errors.Wrap(err, "failed to revoke session token")
			}
		}
	}

	if creds.BearerToken != "" {
		if err := srv.tokenStore.Revoke(ctx, creds.BearerToken); err != nil {
			return errors.Wrap(err, "failed to revoke bearer token")
		}
	}

	return nil
}

// ResolvePrincipal accepts a valid session token first and falls back to the
// bearer token. Anything unresolvable is ErrNotAuthenticated.
func (srv *authService) ResolvePrincipal(ctx context.Context, creds usecase.Credentials) (string, error) {
	if creds.SessionToken != "" {
		userID, err := srv.resolveSession(ctx, creds.SessionToken)
		if err != nil {
			return "", err
		}
		if userID != "" {
			return userID, nil
		}
	}

	if creds.BearerToken != "" {
		userID, err := srv.tokenStore.Resolve(ctx, creds.BearerToken)
		if err == nil {
			return userID, nil
		}
		if !errors.Is(err, service.ErrTokenNotFound) && !errors.Is(err, service.ErrTokenExpired) {
			return "", errors.Wrap(err, "failed to resolve bearer token")
		}
	}

	return "", domainerrors.ErrNotAuthenticated
}

// resolveSession returns the session owner, or "" when the token is invalid or
// was revoked at logout.
func (srv *authService) resolveSession(ctx context.Context, token string) (string, error) {
	claims, err := srv.sessionToken.ValidateSessionToken(token)
	if err != nil {
		srv.log(ctx).Debug("Session token rejected", slog.Any("error", err))

		return "", nil
	}

	revoked, err := srv.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return "", errors.Wrap(err, "failed to check session revocation")
	}
	if revoked {
		srv.log(ctx).Debug("Session token was revoked", slog.String("user_id", claims.UserID))

		return "", nil
	}

	return claims.UserID, nil
}

func (srv *authService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
