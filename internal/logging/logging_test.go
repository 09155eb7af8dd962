package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "warn", Format: "console", Output: &buf})

	logger.Info("should be filtered")
	logger.Warn("should appear")

	output := buf.String()
	if strings.Contains(output, "should be filtered") {
		t.Fatalf("expected info to be filtered, got %q", output)
	}
	if !strings.Contains(output, "should appear") {
		t.Fatalf("expected warning to appear, got %q", output)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "info", Format: "json", Output: &buf})
	logger.Info("hello", slog.String(FieldComponent, "test"))

	if !strings.Contains(buf.String(), `"component":"test"`) {
		t.Fatalf("expected json attribute, got %q", buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "info", Output: &buf})

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("carried")
	if !strings.Contains(buf.String(), "carried") {
		t.Fatalf("expected context logger to be used, got %q", buf.String())
	}

	// Absent logger falls back to a no-op without panicking.
	FromContext(context.Background()).Info("dropped")
}
