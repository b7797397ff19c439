package shared

import (
	"bytes"
	"strings"
	"testing"
)

func TestShortID(t *testing.T) {
	t.Run("returns 4 hex characters", func(t *testing.T) {
		id := ShortID()
		if len(id) != 4 {
			t.Fatalf("expected 4 characters, got %q", id)
		}
		for _, c := range id {
			if !strings.ContainsRune("0123456789abcdef", c) {
				t.Errorf("unexpected character %q in suffix %q", c, id)
			}
		}
	})

	t.Run("successive calls differ", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 20; i++ {
			seen[ShortID()] = true
		}
		if len(seen) < 2 {
			t.Error("expected varying suffixes")
		}
	})
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if len(id) != 36 {
		t.Errorf("expected UUID string, got %q", id)
	}
}

func TestLogger(t *testing.T) {
	t.Run("writes to the provided writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		logger.Info("hello")

		if !strings.Contains(buf.String(), "hello") {
			t.Errorf("expected log output, got %q", buf.String())
		}
	})

	t.Run("child loggers carry fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := WithLogger(NewLogger(&buf), "component", "test")
		logger.Info("tagged")

		out := buf.String()
		if !strings.Contains(out, "component") || !strings.Contains(out, "test") {
			t.Errorf("expected component field, got %q", out)
		}
	})
}
