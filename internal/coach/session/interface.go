package session

import "financial-coach/internal/coach"

// Store owns the in-process conversation history of every user.
// Operations on one user never touch another user's entry.
type Store interface {
	// Append adds a turn and evicts the oldest turns beyond the bound.
	Append(userID string, turn coach.Turn)
	// Recent returns up to limit of the latest turns in chronological order.
	// Unknown users yield an empty slice.
	Recent(userID string, limit int) []coach.Turn
	// Has reports whether the user has an entry in this process.
	Has(userID string) bool
	// Seed creates the entry from previously stored turns. It is a no-op when the entry exists.
	Seed(userID string, turns []coach.Turn) bool
}
