package gemini

import "time"

// Config configures a Client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional endpoint override
	Timeout time.Duration
}

// Request is a single generateContent call.
type Request struct {
	SystemInstruction string
	Contents          []Content
	Temperature       float64
	TopP              float64
	MaxTokens         int
}

// Content is one conversation turn. Role is "user" or "model".
type Content struct {
	Role string
	Text string
}

// Response is the flattened generateContent result.
type Response struct {
	Text         string
	FinishReason string
	// Blocked is set when the prompt or the candidate was withheld on safety grounds.
	Blocked     bool
	BlockReason string
	Usage       Usage
}

// Usage reports token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
