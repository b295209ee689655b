package logger

import "testing"

func TestNew(t *testing.T) {
	l, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Core().Enabled(0) {
		t.Fatalf("expected info level enabled")
	}

	if _, err := New("loud"); err == nil {
		t.Fatalf("expected invalid level error")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected a logger")
	}
}
