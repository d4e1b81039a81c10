package coach

import "time"

// --- Conversation Domain Model ---

// Sender identifies who produced a Turn.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Turn is one message exchanged in a conversation. Immutable once created.
type Turn struct {
	Sender    Sender
	Text      string
	Timestamp time.Time
	// Error marks an assistant turn that carries the apology instead of a model reply.
	Error bool
}

// AssessmentProfile is the result of the financial self-assessment.
// CategoryScores maps a category code to a 0..100 score.
type AssessmentProfile struct {
	UserName       string
	Score          float64
	MaxScore       float64
	CategoryScores map[string]float64
	ResultTitle    string
	AdviceList     []string
}

// AssessmentSnapshot is a stored AssessmentProfile.
type AssessmentSnapshot struct {
	ID        string
	UserID    string
	Profile   AssessmentProfile
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type TurnInput struct {
	UserID  string
	Message string
	// Profile is optional. When nil the latest stored snapshot is used, if any.
	Profile *AssessmentProfile
}

type HistoryInput struct {
	UserID string
	Limit  int
}

type SubmitAssessmentInput struct {
	UserID  string
	Profile AssessmentProfile
}

// --- UseCase Outputs ---

type TurnOutput struct {
	Reply string
	// Degraded is set when Reply is the apology. Cause holds the underlying failure.
	Degraded      bool
	Cause         error
	SafetyBlocked bool
	Provider      string
}

type HistoryOutput struct {
	Turns []Turn
}

type SubmitAssessmentOutput struct {
	Snapshot AssessmentSnapshot
}

type LatestAssessmentOutput struct {
	Snapshot AssessmentSnapshot
}
