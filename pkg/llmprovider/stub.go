package llmprovider

import "context"

const (
	// StubReply is returned by the stub backend for every request.
	StubReply = "The coaching service failed to load, please contact the administrator."

	// SafetyBlockedReply replaces the text of a policy refusal.
	SafetyBlockedReply = "Sorry, I can't answer that question. It may have triggered a safety setting."

	stubName = "stub"
)

// stubProvider stands in when no real backend could be initialized.
// It never fails so callers degrade gracefully.
type stubProvider struct{}

// NewStub returns the stub provider.
func NewStub() Provider {
	return stubProvider{}
}

func (stubProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	return &Response{
		Text:         StubReply,
		ProviderName: stubName,
		ModelName:    stubName,
		Usage:        &Usage{},
	}, nil
}

func (stubProvider) Name() string             { return stubName }
func (stubProvider) Model() string            { return stubName }
func (stubProvider) SupportsSystemRole() bool { return true }
