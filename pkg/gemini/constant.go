package gemini

const (
	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel = "gemini-2.5-flash"

	roleUser  = "user"
	roleModel = "model"
)
