package logger

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestInitAndGet(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}
}

func TestBasicLogging(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	l := Get()
	l.Info(ctx, "info message", String("k", "v"), Int("n", 1))
	l.Debug(ctx, "debug message", Float64("f", 1.5))
	l.Warn(ctx, "warn message", Duration("d", 5*time.Second))
	l.Error(ctx, "error message", Time("t", time.Now()))

	named := Named("feed")
	named.Info(ctx, "named logger message")
}

func TestSetLevelString(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	cases := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", 0, true},
	}
	for _, c := range cases {
		err := SetLevelString(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("SetLevelString(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("SetLevelString(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got := levelVar.Level(); got != c.want {
			t.Errorf("SetLevelString(%q): level = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestGetPanicsWhenUninitialized(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if r := recover(); r == nil {
			t.Error("expected panic from Get() before Init()")
		}
	}()
	Get()
}
