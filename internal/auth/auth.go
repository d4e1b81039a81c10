package auth

import (
	"context"
	"crypto/subtle"
	"errors"
)

const (
	// DevUserID identifies every request when dev mode is on.
	DevUserID = "test_user_id"
	// DefaultUserID is used when auth is optional and the request names no user.
	DefaultUserID = "default_user"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Verifier resolves a bearer token to a user id.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

type staticVerifier struct {
	tokens map[string]string
}

// NewStaticVerifier returns a Verifier backed by a fixed token → user id table.
func NewStaticVerifier(tokens map[string]string) Verifier {
	copied := make(map[string]string, len(tokens))
	for token, userID := range tokens {
		if token != "" && userID != "" {
			copied[token] = userID
		}
	}
	return &staticVerifier{tokens: copied}
}

func (v *staticVerifier) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}
	for known, userID := range v.tokens {
		if subtle.ConstantTimeCompare([]byte(known), []byte(token)) == 1 {
			return userID, nil
		}
	}
	return "", ErrInvalidToken
}
