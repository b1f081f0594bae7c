package roomcode

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"codementor-be/internal/pkg/apperrors"
)

// Length is the number of hex characters in a room code.
const Length = 12

// MaxAttempts bounds collision retries before giving up.
const MaxAttempts = 5

// ExistsFunc reports whether a candidate code is already taken.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// New returns a random lowercase hex room code.
func New() (string, error) {
	buf := make([]byte, Length/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("roomcode: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// NewUnique generates codes until one passes the exists check, giving up
// after MaxAttempts with apperrors.ErrIDGeneration.
func NewUnique(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		code, err := New()
		if err != nil {
			return "", err
		}
		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("roomcode: exhausted %d attempts: %w", MaxAttempts, apperrors.ErrIDGeneration)
}
