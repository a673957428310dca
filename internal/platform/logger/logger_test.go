package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"verbose": Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("JSON") != FormatJSON {
		t.Fatalf("expected json format")
	}
	if ParseFormat("pretty") != FormatText {
		t.Fatalf("expected text as fallback")
	}
}

func TestLogger_WithMergesFields_AndKeepsErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core).With(map[string]any{"component": "recordstore"})

	l.Warn("persist failed", map[string]any{
		"key":   "animals",
		"error": errors.New("quota exceeded"),
		"":      "ignored",
	})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel || e.Message != "persist failed" {
		t.Fatalf("unexpected entry %+v", e.Entry)
	}

	ctx := e.ContextMap()
	if ctx["component"] != "recordstore" || ctx["key"] != "animals" {
		t.Fatalf("unexpected fields %#v", ctx)
	}
	if ctx["error"] != "quota exceeded" {
		t.Fatalf("expected error field, got %#v", ctx["error"])
	}
	if _, ok := ctx[""]; ok {
		t.Fatalf("blank keys must be dropped")
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewWithCore(core)

	l.Debug("hidden", nil)
	l.Info("shown", nil)

	if logs.Len() != 1 || logs.All()[0].Message != "shown" {
		t.Fatalf("expected only info entry, got %d", logs.Len())
	}
}
