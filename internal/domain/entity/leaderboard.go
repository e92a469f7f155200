package entity

import "time"

// LeaderboardEntry is one ranked row of a day's leaderboard.
type LeaderboardEntry struct {
	Rank        int
	CheckInID   int64
	UserID      string
	Name        string
	Picture     string
	CheckInTime time.Time
	Photo       string
	Likes       int
	Dislikes    int
}

// Leaderboard is the ranked list of check-ins for a single calendar date.
type Leaderboard struct {
	Date    time.Time
	Entries []*LeaderboardEntry
}
