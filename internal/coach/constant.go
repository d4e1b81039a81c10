package coach

// ApologyReply is returned to the user, and recorded as an error turn, when a turn cannot be answered.
const ApologyReply = "Sorry, the AI coach ran into a technical problem. Please try again later."

const (
	// DefaultMaxHistoryLength is counted in exchanges; the store keeps twice as many turns.
	DefaultMaxHistoryLength = 10
	DefaultHistoryLimit     = 20
)
