package logger

import (
	"bytes"
	"os"
	"testing"
)

func resetAfter(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
}

func TestSetVerbose(t *testing.T) {
	resetAfter(t)

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name     string
		log      func()
		expected string
	}{
		{"debug", func() { Debug("backup written to %s", "/tmp/doc.backup") }, "[DEBUG] backup written to /tmp/doc.backup\n"},
		{"info", func() { Info("removed %d lines", 3) }, "[INFO] removed 3 lines\n"},
		{"warn", func() { Warn("write attempt failed") }, "[WARN] write attempt failed\n"},
		{"section", func() { Section("Clean") }, "\n=== Clean ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetAfter(t)

			var buf bytes.Buffer
			SetOutput(&buf)
			SetVerbose(true)

			tt.log()

			if got := buf.String(); got != tt.expected {
				t.Errorf("unexpected output: %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	resetAfter(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestConcurrentAccess(t *testing.T) {
	resetAfter(t)

	var buf bytes.Buffer
	SetOutput(&buf)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		i := i
		go func() {
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
	// Test passes if the race detector stays quiet
}
