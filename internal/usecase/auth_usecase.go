package usecase

import (
	"context"
	"time"

	"checkin/internal/domain/entity"
)

// CompleteLoginInput is what the provider sends back to the callback.
type CompleteLoginInput struct {
	State         string
	Code          string
	ProviderError string
}

type CompleteLoginOutput struct {
	User         *entity.User
	BearerToken  string
	SessionToken string
	SessionTTL   time.Duration
}

// Credentials are the raw values a request presented. Either may be empty.
type Credentials struct {
	SessionToken string
	BearerToken  string
}

// AuthUsecase drives Google sign-in and resolves request principals.
type AuthUsecase interface {
	// BeginLogin stores a fresh state value and returns the consent URL.
	BeginLogin(ctx context.Context) (string, error)

	// CompleteLogin validates state, exchanges the code, upserts the user and
	// issues both a bearer token and a session token.
	CompleteLogin(ctx context.Context, input CompleteLoginInput) (*CompleteLoginOutput, error)

	// Logout revokes the bearer token when one was presented.
	Logout(ctx context.Context, creds Credentials) error

	// ResolvePrincipal returns the user id behind creds, session token first.
	ResolvePrincipal(ctx context.Context, creds Credentials) (string, error)

	CurrentUser(ctx context.Context, userID string) (*entity.User, error)
}
