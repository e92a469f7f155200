// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// VerifyLocationInput carries a pre-flight position check. Nil means the
// coordinate was absent from the request.
type VerifyLocationInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// CheckInInput carries the committing submission.
type CheckInInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Photo     string   `json:"photo"`
}

// --- Output DTOs ---

type VerifyLocationOutput struct {
	Distance      float64 `json:"distance"`
	AllowedRadius float64 `json:"allowed_radius"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Message       string  `json:"message"`
}

type CheckInOutput struct {
	CheckInID   int64     `json:"checkin_id"`
	CheckInTime time.Time `json:"check_in_time"`
	Distance    float64   `json:"distance"`
	Message     string    `json:"message"`
}

type StatusOutput struct {
	CheckedIn   bool       `json:"checked_in"`
	CheckInTime *time.Time `json:"check_in_time,omitempty"`
}

// CheckInUsecase gates and records one check-in per user per calendar day.
// VerifyLocation and CheckIn validate independently; neither trusts the other.
type CheckInUsecase interface {
	VerifyLocation(ctx context.Context, userID string, input VerifyLocationInput) (*VerifyLocationOutput, error)
	CheckIn(ctx context.Context, userID string, input CheckInInput) (*CheckInOutput, error)
	Status(ctx context.Context, userID string) (*StatusOutput, error)
}
