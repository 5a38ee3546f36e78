package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{in: "debug", want: zapcore.DebugLevel},
		{in: "warn", want: zapcore.WarnLevel},
		{in: "ERROR", want: zapcore.ErrorLevel},
		{in: "", want: zapcore.InfoLevel},
		{in: "verbose", want: zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := &zapLogger{sugar: zap.New(core).Sugar()}
	ctx := context.Background()

	l.Debugf(ctx, "hidden %d", 1)
	l.Infof(ctx, "parsed %d task(s)", 2)
	l.Warn(ctx, "calendar ", "unavailable")
	l.Errorf(ctx, "task.usecase.Create: %v", "boom")

	entries := logs.AllUntimed()
	want := []struct {
		level zapcore.Level
		msg   string
	}{
		{zapcore.InfoLevel, "parsed 2 task(s)"},
		{zapcore.WarnLevel, "calendar unavailable"},
		{zapcore.ErrorLevel, "task.usecase.Create: boom"},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i, w := range want {
		if entries[i].Level != w.level || entries[i].Message != w.msg {
			t.Errorf("entry %d = (%v, %q), want (%v, %q)", i, entries[i].Level, entries[i].Message, w.level, w.msg)
		}
	}
}

func TestInit(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON},
	} {
		if l := Init(cfg); l == nil {
			t.Errorf("Init(%+v) = nil", cfg)
		}
	}
	NewNop().Info(context.Background(), "discarded")
}
