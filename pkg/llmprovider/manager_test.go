package llmprovider

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	systemRole bool
	err        error
	response   *Response
	delay      time.Duration
	callCount  int
	lastReq    *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) Name() string             { return m.name }
func (m *mockProvider) Model() string            { return m.model }
func (m *mockProvider) SupportsSystemRole() bool { return m.systemRole }

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func userRequest(text string) *Request {
	return &Request{Messages: []Message{{Role: RoleUser, Content: text}}}
}

func TestGenerateContent_Success(t *testing.T) {
	primary := &mockProvider{
		name:  "primary",
		model: "primary-model",
		response: &Response{
			Text:         "Hello from primary provider",
			ProviderName: "primary",
			Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
		},
	}
	logger := &mockLogger{}
	manager := NewManager(PrimaryBackend(primary), &Config{}, logger)

	resp, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text != "Hello from primary provider" {
		t.Errorf("Unexpected text: %q", resp.Text)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("Expected 1 info and 0 warn logs, got %d/%d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_NoRetryOnFailure(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", err: errors.New("boom")}
	logger := &mockLogger{}
	manager := NewManager(PrimaryBackend(primary), &Config{}, logger)

	resp, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if resp != nil {
		t.Errorf("Expected nil response, got: %+v", resp)
	}
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("Expected ErrUpstream, got: %v", err)
	}
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Provider != "primary" {
		t.Errorf("Expected *ProviderError for primary, got: %v", err)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected exactly one call, got: %d", primary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_Timeout(t *testing.T) {
	slow := &mockProvider{name: "slow", model: "m", delay: time.Second, response: &Response{Text: "late"}}
	manager := NewManager(PrimaryBackend(slow), &Config{RequestTimeout: 20 * time.Millisecond}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Expected ErrTimeout, got: %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected wrapped context.DeadlineExceeded, got: %v", err)
	}
}

func TestGenerateContent_EmptyTextIsUpstreamError(t *testing.T) {
	p := &mockProvider{name: "p", model: "m", response: &Response{}}
	manager := NewManager(PrimaryBackend(p), nil, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if !errors.Is(err, ErrUpstream) || !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("Expected upstream empty-response error, got: %v", err)
	}
}

func TestGenerateContent_SafetyBlockedIsNotAnError(t *testing.T) {
	p := &mockProvider{name: "p", model: "m", response: &Response{SafetyBlocked: true}}
	manager := NewManager(PrimaryBackend(p), nil, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !resp.SafetyBlocked || resp.Text != SafetyBlockedReply {
		t.Errorf("Expected safety reply, got: %+v", resp)
	}
}

func TestGenerateContent_EmptyRequest(t *testing.T) {
	p := &mockProvider{name: "p", model: "m"}
	manager := NewManager(PrimaryBackend(p), nil, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("Expected ErrInvalidRequest, got: %v", err)
	}
	if p.callCount != 0 {
		t.Errorf("Expected provider not to be called")
	}
}

func TestStubBackend(t *testing.T) {
	manager := NewManager(Backend{}, nil, &mockLogger{})

	if manager.Backend().Kind != BackendStub {
		t.Fatalf("Expected stub backend when no provider given")
	}
	resp, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if err != nil {
		t.Fatalf("Stub must not fail, got: %v", err)
	}
	if resp.Text != StubReply {
		t.Errorf("Expected stub reply, got: %q", resp.Text)
	}
}

func TestSupportsSystemRole(t *testing.T) {
	inline := NewManager(PrimaryBackend(&mockProvider{name: "p", systemRole: false}), nil, &mockLogger{})
	if inline.SupportsSystemRole() {
		t.Error("Expected inline backend to report no system role")
	}
	system := NewManager(PrimaryBackend(&mockProvider{name: "p", systemRole: true}), nil, &mockLogger{})
	if !system.SupportsSystemRole() {
		t.Error("Expected system-role backend to report system role")
	}
}

type fakeNetError struct{ timeout bool }

func (e fakeNetError) Error() string   { return "net failure" }
func (e fakeNetError) Timeout() bool   { return e.timeout }
func (e fakeNetError) Temporary() bool { return false }

var _ net.Error = fakeNetError{}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"deadline", context.DeadlineExceeded, ErrTimeout},
		{"cancelled", context.Canceled, ErrTimeout},
		{"net timeout", fakeNetError{timeout: true}, ErrTimeout},
		{"net failure", fakeNetError{}, ErrNetwork},
		{"other", errors.New("bad json"), ErrUpstream},
		{"already classified", &ProviderError{Provider: "x", Kind: ErrConfig, Err: errors.New("no key")}, ErrConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify("p", tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("Classify(%v) = %v, want kind %v", tt.err, got, tt.want)
			}
		})
	}

	if Classify("p", nil) != nil {
		t.Error("Classify(nil) should be nil")
	}
}

func TestKindForStatus(t *testing.T) {
	if KindForStatus(401) != ErrConfig || KindForStatus(403) != ErrConfig {
		t.Error("expected auth statuses to map to ErrConfig")
	}
	if KindForStatus(504) != ErrTimeout {
		t.Error("expected 504 to map to ErrTimeout")
	}
	if KindForStatus(500) != ErrUpstream {
		t.Error("expected 500 to map to ErrUpstream")
	}
}
