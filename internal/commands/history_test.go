package commands

import "testing"

func TestShortRunID(t *testing.T) {
	if got := shortRunID("8c6d2f41-9a33-4a0e-b2cf-0f4f0a1d9b77"); got != "8c6d2f41" {
		t.Fatalf("expected 8-byte prefix, got %q", got)
	}
	// Rows shorter than the prefix must print as-is, not panic.
	if got := shortRunID("abc"); got != "abc" {
		t.Fatalf("expected short ID unchanged, got %q", got)
	}
	if got := shortRunID(""); got != "" {
		t.Fatalf("expected empty ID unchanged, got %q", got)
	}
}
