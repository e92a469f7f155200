package service

import "context"

// OAuthUser is the identity asserted by the provider after a successful exchange.
type OAuthUser struct {
	ID            string // Provider subject ("sub")
	Email         string
	Name          string
	AvatarURL     string
	EmailVerified bool
}

// OAuthService drives the provider's authorization-code flow.
type OAuthService interface {
	// AuthCodeURL builds the consent URL carrying state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for a verified identity.
	Exchange(ctx context.Context, code string) (*OAuthUser, error)
}
