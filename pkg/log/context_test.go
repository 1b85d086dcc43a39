package log_test

import (
	"context"
	"testing"

	"smart-task-input/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want req-1", got)
	}
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}
}

func TestInitAndNop(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-2")

	l := log.Init(log.ZapConfig{Level: "bogus", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})
	l.Debugf(ctx, "debug %d", 1)
	l.Infof(ctx, "info %s", "x")

	json := log.Init(log.ZapConfig{Level: "warn", Mode: log.ModeProduction, Encoding: log.EncodingJSON, ColorEnabled: true})
	json.Warn(ctx, "warn")

	nop := log.NewNop()
	nop.Error(ctx, "discarded")
}
