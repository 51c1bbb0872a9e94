package utils

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-42", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	sub, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken: %v", err)
	}
	if sub != "user-42" {
		t.Fatalf("subject = %q, want user-42", sub)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-42", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-42", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// Flip one character of the claims segment.
	idx := strings.Index(token, ".") + 1
	flip := byte('A')
	if token[idx] == 'A' {
		flip = 'B'
	}
	tampered := token[:idx] + string(flip) + token[idx+1:]

	if _, err := ValidateToken(tampered); err == nil {
		t.Fatal("expected a tampered token to be rejected")
	}
}

func TestHashToken(t *testing.T) {
	h1 := HashToken("refresh-token-one")
	h2 := HashToken("refresh-token-one")
	h3 := HashToken("refresh-token-two")

	if h1 != h2 {
		t.Error("hashing must be deterministic")
	}
	if h1 == h3 {
		t.Error("distinct tokens must not collide")
	}
	if len(h1) != 64 {
		t.Errorf("digest length = %d, want 64 hex characters", len(h1))
	}
	if strings.ToLower(h1) != h1 {
		t.Errorf("digest %q is not lowercase hex", h1)
	}
}
