package logging

import (
	"context"
	"testing"
)

func TestInitLogger(t *testing.T) {
	InitLogger()
	if AppLogger == nil || RequestLogger == nil || ErrorLogger == nil {
		t.Fatalf("expected all loggers initialized")
	}
}

func TestLogDuration(t *testing.T) {
	InitLogger()

	done := LogDuration(context.Background(), "test_func")
	if done == nil {
		t.Fatalf("expected a completion func")
	}
	done()

	// With a trace id in the context the completion func must still run
	// cleanly.
	ctx := context.WithValue(context.Background(), "trace_id", "abc123")
	LogDuration(ctx, "traced_func")()
}
