package llmprovider

import (
	"context"
	"errors"
	"time"

	"financial-coach/pkg/log"
)

// ErrInvalidRequest indicates the request is malformed
var ErrInvalidRequest = errors.New("invalid request")

// BackendKind tags which variant of Backend is active.
type BackendKind int

const (
	BackendPrimary BackendKind = iota
	BackendStub
)

func (k BackendKind) String() string {
	if k == BackendStub {
		return "stub"
	}
	return "primary"
}

// Backend is the single provider selected at startup: either a real
// provider or the stub. It is not re-probed per call.
type Backend struct {
	Kind     BackendKind
	Provider Provider
	// Reason records why the stub was selected. Nil for a primary backend.
	Reason error
}

// PrimaryBackend wraps a working provider.
func PrimaryBackend(p Provider) Backend {
	return Backend{Kind: BackendPrimary, Provider: p}
}

// StubBackend returns the degraded backend, remembering why it was chosen.
func StubBackend(reason error) Backend {
	return Backend{Kind: BackendStub, Provider: NewStub(), Reason: reason}
}

// Config defines configuration for the Manager
type Config struct {
	// RequestTimeout bounds a single generation call. Zero means the caller's context only.
	RequestTimeout time.Duration
}

// Manager dispatches generation requests to the active backend.
// No automatic retry is performed; callers may add one.
type Manager struct {
	backend Backend
	config  *Config
	logger  log.Logger
}

// NewManager creates a new Manager for the given backend
func NewManager(backend Backend, config *Config, logger log.Logger) *Manager {
	if backend.Provider == nil {
		backend = StubBackend(ErrNoProvidersConfigured)
	}
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		backend: backend,
		config:  config,
		logger:  logger,
	}
}

// Backend returns the active backend.
func (m *Manager) Backend() Backend {
	return m.backend
}

// SupportsSystemRole reports the capability of the active backend.
func (m *Manager) SupportsSystemRole() bool {
	return m.backend.Provider.SupportsSystemRole()
}

// GenerateContent sends req to the active backend. Failures are returned as *ProviderError.
// A safety refusal is a successful response with SafetyBlocked set.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	provider := m.backend.Provider

	if req == nil || len(req.Messages) == 0 {
		return nil, &ProviderError{Provider: provider.Name(), Kind: ErrUpstream, Err: ErrInvalidRequest}
	}

	if m.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.RequestTimeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := provider.GenerateContent(ctx, req)
	if err != nil {
		err = Classify(provider.Name(), err)
		m.logFailure(ctx, provider, err, time.Since(start))
		return nil, err
	}

	if resp == nil || (resp.Text == "" && !resp.SafetyBlocked) {
		err = &ProviderError{Provider: provider.Name(), Kind: ErrUpstream, Err: ErrEmptyResponse}
		m.logFailure(ctx, provider, err, time.Since(start))
		return nil, err
	}

	if resp.SafetyBlocked {
		resp.Text = SafetyBlockedReply
		m.logger.Warnf(ctx, "LLM response blocked by provider safety policy: provider=%s model=%s",
			provider.Name(), provider.Model())
	}
	if resp.Usage == nil {
		resp.Usage = &Usage{}
	}

	m.logSuccess(ctx, provider, resp, time.Since(start))
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response, elapsed time.Duration) {
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d elapsed=%s",
		provider.Name(),
		provider.Model(),
		resp.Usage.InputTokens,
		resp.Usage.OutputTokens,
		elapsed,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error, elapsed time.Duration) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s elapsed=%s error=%v",
		provider.Name(),
		provider.Model(),
		elapsed,
		err,
	)
}
