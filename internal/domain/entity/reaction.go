package entity

import "time"

// ReactionType is the binary kind of a reaction.
type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
)

// IsValid reports whether the reaction type is known.
func (t ReactionType) IsValid() bool {
	return t == ReactionLike || t == ReactionDislike
}

// Reaction is a user's annotation on someone's check-in.
// A user gives at most one reaction per calendar day, whatever the target.
type Reaction struct {
	ID        int64
	UserID    string
	CheckInID int64
	Type      ReactionType
	Date      time.Time
	CreatedAt time.Time
}

// ReactionCount aggregates reactions received by one check-in.
type ReactionCount struct {
	Likes    int
	Dislikes int
}
