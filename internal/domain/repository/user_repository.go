// Package repository defines the persistence contracts used by the use case layer.
package repository

import (
	"context"

	"checkin/internal/domain/entity"
	"checkin/internal/errors"
)

// ErrUserNotFound is returned when no user has the requested id.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists users signed in through the identity provider.
type UserRepository interface {
	// FindByID retrieves a user by provider subject.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Upsert inserts the user or refreshes name, email and picture of an existing one.
	// CreatedAt and UpdatedAt are written back to user.
	Upsert(ctx context.Context, user *entity.User) error
}
