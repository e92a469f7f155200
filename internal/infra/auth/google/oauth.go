// Package google implements the Google sign-in flow on top of x/oauth2 and
// verifies the returned ID token with google.golang.org/api/idtoken.
package google

import (
	"context"
	"log/slog"

	"checkin/config"
	"checkin/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

var defaultScopes = []string{"openid", "email", "profile"}

// idTokenValidator matches idtoken.Validate.
type idTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// OAuthService handles Google OAuth infrastructure operations
type OAuthService struct {
	oauthConfig *oauth2.Config
	validate    idTokenValidator
	logger      *slog.Logger
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config, logger *slog.Logger) (service.OAuthService, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("googleOAuth.clientId is required")
	}

	return newOAuthService(cfg.GoogleOAuth, googleoauth.Endpoint, idtoken.Validate, logger), nil
}

func newOAuthService(cfg *config.GoogleOAuthConfig, endpoint oauth2.Endpoint, validate idTokenValidator, logger *slog.Logger) *OAuthService {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	return &OAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		validate: validate,
		logger:   logger,
	}
}

// AuthCodeURL builds the Google consent URL carrying state.
func (s *OAuthService) AuthCodeURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// Exchange trades the authorization code for tokens, then verifies the ID
// token's signature and audience before trusting any identity claim.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	if code == "" {
		return nil, errors.New("authorization code is empty")
	}

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("token response has no id_token")
	}

	payload, err := s.validate(ctx, rawIDToken, s.oauthConfig.ClientID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid id token")
	}
	if payload.Subject == "" {
		return nil, errors.New("id token has no subject")
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}
	if user.Name == "" {
		user.Name = user.Email
	}

	s.logger.InfoContext(ctx, "Google ID token verified",
		slog.String("userID", user.ID),
		slog.Bool("emailVerified", user.EmailVerified),
	)

	return user, nil
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

func claimBool(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
