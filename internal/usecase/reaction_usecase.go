package usecase

import "context"

type ReactInput struct {
	CheckInID int64
	Type      string `json:"type"`
}

type ReactOutput struct {
	ReactionID int64  `json:"reaction_id"`
	CheckInID  int64  `json:"checkin_id"`
	Type       string `json:"type"`
	Date       string `json:"date"`
}

// ReactionUsecase records likes and dislikes on other users' check-ins.
// A user reacts at most once per calendar day, whichever check-in is targeted.
type ReactionUsecase interface {
	React(ctx context.Context, userID string, input ReactInput) (*ReactOutput, error)
}
