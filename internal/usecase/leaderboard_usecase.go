package usecase

import (
	"context"
	"time"
)

type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	CheckInID   int64     `json:"checkin_id"`
	Name        string    `json:"name"`
	Picture     string    `json:"picture"`
	CheckInTime time.Time `json:"check_in_time"`
	Photo       string    `json:"photo"`
	Likes       int       `json:"likes"`
	Dislikes    int       `json:"dislikes"`
}

type DailyLeaderboardOutput struct {
	Date        string             `json:"date"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// HistoryEntry is a ranked row of a past day. It never carries the photo.
type HistoryEntry struct {
	Rank        int       `json:"rank"`
	Name        string    `json:"name"`
	Picture     string    `json:"picture"`
	CheckInTime time.Time `json:"check_in_time"`
}

type HistoryDay struct {
	Date    string         `json:"date"`
	Entries []HistoryEntry `json:"entries"`
}

type HistoryOutput struct {
	History []HistoryDay `json:"history"`
}

// LeaderboardUsecase derives ranked, read-only views over the check-in ledger.
type LeaderboardUsecase interface {
	// Daily ranks the check-ins of date, earliest first.
	Daily(ctx context.Context, date time.Time) (*DailyLeaderboardOutput, error)

	// Today is Daily for the current site date.
	Today(ctx context.Context) (*DailyLeaderboardOutput, error)

	// History lists up to days most recent check-in dates, newest first.
	// days <= 0 selects the configured default.
	History(ctx context.Context, days int) (*HistoryOutput, error)

	// Refresh rebuilds the cached leaderboard of date.
	Refresh(ctx context.Context, date time.Time) error
}
