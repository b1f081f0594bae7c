package roomcode

import (
	"context"
	"errors"
	"testing"

	"codementor-be/internal/pkg/apperrors"
)

func TestNew(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := New()
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		if len(code) != Length {
			t.Fatalf("code length = %d, want %d", len(code), Length)
		}
		for _, r := range code {
			if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
				t.Fatalf("code %q contains non-hex character %q", code, r)
			}
		}
		if seen[code] {
			t.Fatalf("duplicate code %q in 100 draws", code)
		}
		seen[code] = true
	}
}

func TestNewUniqueRetriesOnCollision(t *testing.T) {
	collisions := 3
	calls := 0
	exists := func(ctx context.Context, code string) (bool, error) {
		calls++
		return calls <= collisions, nil
	}

	code, err := NewUnique(context.Background(), exists)
	if err != nil {
		t.Fatalf("NewUnique() error: %v", err)
	}
	if code == "" {
		t.Fatal("NewUnique() returned empty code")
	}
	if calls != collisions+1 {
		t.Errorf("exists called %d times, want %d", calls, collisions+1)
	}
}

func TestNewUniqueExhaustsAttempts(t *testing.T) {
	exists := func(ctx context.Context, code string) (bool, error) {
		return true, nil
	}

	_, err := NewUnique(context.Background(), exists)
	if !errors.Is(err, apperrors.ErrIDGeneration) {
		t.Fatalf("err = %v, want ErrIDGeneration", err)
	}
}

func TestNewUniquePropagatesLookupError(t *testing.T) {
	boom := errors.New("db down")
	exists := func(ctx context.Context, code string) (bool, error) {
		return false, boom
	}

	_, err := NewUnique(context.Background(), exists)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want lookup error", err)
	}
}
