package main

import (
	"log/slog"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gogpu/animbridge/engine"
)

func TestZapHandlerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := slog.New(newZapHandler(zap.New(core)))

	log.Debug("hidden")
	log.Info("shown")
	log.Warn("careful")
	log.Error("broken")

	entries := logs.AllUntimed()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	want := []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != want[i] {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, want[i])
		}
	}
}

func TestZapHandlerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := slog.New(newZapHandler(zap.New(core))).With("component", "test")

	log.Info("imported",
		"artboards", 2,
		"ratio", 0.5,
		"ok", true,
		"took", time.Second,
		"result", engine.ImportMalformed,
		slog.Group("size", "w", 10, "h", 20))

	entries := logs.AllUntimed()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	checks := map[string]any{
		"component": "test",
		"artboards": int64(2),
		"ratio":     0.5,
		"ok":        true,
		"took":      time.Second,
		"result":    "malformed",
	}
	for k, want := range checks {
		if got := fields[k]; got != want {
			t.Errorf("field %s = %v (%T), want %v (%T)", k, got, got, want, want)
		}
	}
	size, ok := fields["size"].(map[string]any)
	if !ok || size["w"] != int64(10) || size["h"] != int64(20) {
		t.Errorf("group size = %v, want w=10 h=20", fields["size"])
	}
}

func TestZapHandlerGroup(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := slog.New(newZapHandler(zap.New(core))).WithGroup("bridge")
	log.Info("msg", "k", "v")

	fields := logs.AllUntimed()[0].ContextMap()
	bridge, ok := fields["bridge"].(map[string]any)
	if !ok || bridge["k"] != "v" {
		t.Errorf("fields = %v, want bridge.k=v", fields)
	}
}
