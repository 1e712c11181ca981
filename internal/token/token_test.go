package token_test

import (
	"regexp"
	"testing"

	"github.com/svera/shareport/internal/token"
)

func TestNew(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z0-9]+$`)

	for _, length := range []int{token.ShareCodeLength, token.InviteCodeLength} {
		code, err := token.New(length)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(code) != length {
			t.Errorf("Expected code of length %d, got %d", length, len(code))
		}
		if !pattern.MatchString(code) {
			t.Errorf("Code %s contains characters outside [A-Za-z0-9]", code)
		}
	}
}

func TestNewDoesNotRepeat(t *testing.T) {
	seen := make(map[string]struct{}, 1000)

	for i := 0; i < 1000; i++ {
		code, err := token.New(token.ShareCodeLength)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if _, ok := seen[code]; ok {
			t.Fatalf("Duplicate code %s generated after %d iterations", code, i)
		}
		seen[code] = struct{}{}
	}
}
