package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, json := range []bool{false, true} {
		logger, err := New(json, true)
		if err != nil {
			t.Fatalf("New(%v, true) failed: %v", json, err)
		}
		if !logger.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("expected debug level enabled")
		}
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["foo"] != "bar" {
		t.Fatalf("expected field to be bar")
	}

	fallback := WithFields(nil, zap.String("baz", "qux"))
	if fallback == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
	fallback.Info("another log")
}

func TestTruncateForLog(t *testing.T) {
	if got := TruncateForLog("  hello world  ", 5); got != "hello..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := TruncateForLog("short", 10); got != "short" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := TruncateForLog("anything", 0); got != "" {
		t.Fatalf("expected empty for zero limit, got %q", got)
	}
}
