// Package entity contains the core business objects of the check-in service.
package entity

import "time"

// User is a person who signed in through the identity provider.
// ID is the provider-issued subject and never changes.
type User struct {
	ID        string    // Provider subject (Google "sub" claim).
	Email     string    // Unique contact email.
	Name      string    // Display name shown on the leaderboard.
	Picture   string    // Optional avatar URL.
	CreatedAt time.Time // First sign-in.
	UpdatedAt time.Time // Last profile refresh.
}
