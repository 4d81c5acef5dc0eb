package log_test

import (
	"context"
	"testing"

	"events-portal/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}

func TestInit(t *testing.T) {
	t.Run("Console", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true})
		if l == nil {
			t.Fatal("expected logger")
		}
		l.Infof(log.WithRequestID(context.Background(), "req-2"), "hello %s", "world")
	})

	t.Run("JSON Invalid Level", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "nope", Mode: "production", Encoding: "json"})
		if l == nil {
			t.Fatal("expected logger")
		}
		l.Debug(context.Background(), "dropped at info level")
	})
}
