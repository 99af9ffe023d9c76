package shared

import (
	"encoding/hex"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(content)
}

func TestGenerateID(t *testing.T) {
	first := GenerateID()
	second := GenerateID()

	if first == "" || second == "" {
		t.Fatal("expected non-empty IDs")
	}
	if first == second {
		t.Error("expected unique IDs")
	}
	if len(strings.Split(first, "-")) != 5 {
		t.Errorf("expected UUID shape, got %s", first)
	}
}

func TestGenerateState(t *testing.T) {
	first, err := GenerateState()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != 32 {
		t.Errorf("expected 32 hex characters, got %d", len(first))
	}
	if _, err := hex.DecodeString(first); err != nil {
		t.Errorf("expected valid hex, got %s", first)
	}

	second, err := GenerateState()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("expected unique state tokens")
	}
}

func TestMarshalJSON(t *testing.T) {
	data := map[string]string{"key": "value"}

	t.Run("compact", func(t *testing.T) {
		out, err := MarshalJSON(data, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != `{"key":"value"}` {
			t.Errorf("unexpected output %s", out)
		}
	})

	t.Run("pretty", func(t *testing.T) {
		out, err := MarshalJSON(data, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(out), `"key": "value"`) {
			t.Errorf("expected indented output, got %s", out)
		}
	})

	t.Run("rejects non-serializable values", func(t *testing.T) {
		if _, err := MarshalJSON(make(chan int), false); err == nil {
			t.Error("expected error for channel value")
		}
	})
}

func TestLoggers(t *testing.T) {
	t.Run("NewLogger defaults to stderr", func(t *testing.T) {
		if NewLogger(nil) == nil {
			t.Fatal("expected logger")
		}
	})

	t.Run("WithLogger attaches fields", func(t *testing.T) {
		var buf strings.Builder
		logger := NewLogger(&buf)
		SetLogLevel(logger, log.InfoLevel)

		child := WithLogger(logger, "component", "extractor")
		child.Info("hello")

		if !strings.Contains(buf.String(), "component") {
			t.Errorf("expected key in output, got %s", buf.String())
		}
	})

	t.Run("NewFileLogger writes to the file", func(t *testing.T) {
		path := t.TempDir() + "/test.log"

		logger, f, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer f.Close()

		logger.Info("file entry")

		content := readFile(t, path)
		if !strings.Contains(content, "file entry") {
			t.Errorf("expected log entry in file, got %s", content)
		}
	})
}
