package llmprovider

import "context"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "glm", "gemini")
	Name() string

	// Model returns the model being used
	Model() string

	// SupportsSystemRole reports whether a leading system message can be sent as such.
	// Providers that return false expect the persona folded into the first user message.
	SupportsSystemRole() bool
}

// Request represents a normalized, provider-neutral generation request
type Request struct {
	Messages    []Message
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Message represents a conversation message
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	// SafetyBlocked marks a policy refusal. Text then holds SafetyBlockedReply.
	SafetyBlocked bool
	Usage         *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
