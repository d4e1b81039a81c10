package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrConfig indicates a missing or rejected credential. Fatal to the call.
	ErrConfig = errors.New("provider misconfigured")

	// ErrUpstream indicates a non-2xx or malformed provider response.
	ErrUpstream = errors.New("upstream error")

	// ErrTimeout indicates the call exceeded its deadline or was cancelled.
	ErrTimeout = errors.New("provider timeout")

	// ErrNetwork indicates the provider could not be reached.
	ErrNetwork = errors.New("network error")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrEmptyResponse indicates the provider answered without any text
	ErrEmptyResponse = errors.New("empty response")
)

// ProviderError wraps provider-specific errors with a failure kind.
// errors.Is matches both the kind and the wrapped cause.
type ProviderError struct {
	Provider string
	Kind     error
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func (e *ProviderError) Is(target error) bool {
	return target == e.Kind
}

// Classify wraps err into a *ProviderError, inferring the kind from
// context and network errors. Errors that already carry a kind are returned as is.
func Classify(provider string, err error) error {
	if err == nil {
		return nil
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return err
	}
	return &ProviderError{Provider: provider, Kind: kindOf(err), Err: err}
}

// KindForStatus maps an HTTP status code to a failure kind.
func KindForStatus(status int) error {
	switch status {
	case 401, 403:
		return ErrConfig
	case 408, 504:
		return ErrTimeout
	default:
		return ErrUpstream
	}
}

func kindOf(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrTimeout
		}
		return ErrNetwork
	}
	return ErrUpstream
}
