package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	logger := Get()
	if logger == nil {
		t.Fatal("logger is nil after initialization")
	}
}

func TestLoggerBasic(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	logger := Get()
	ctx := context.Background()
	logger.Debug(ctx, "debug message", String("k", "v"))
	logger.Info(ctx, "info message", Int("n", 1), Float64("f", 0.5))
	logger.Warn(ctx, "warn message", Bool("flag", true))
	logger.Error(ctx, "error message", Error(errors.New("boom")))
}

func TestNamedLogger(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	named := Named("ranker")
	if named == nil {
		t.Fatal("named logger is nil")
	}
	named.Info(context.Background(), "named message")
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
	for _, tc := range cases {
		err := SetLevelString(tc.in)
		if tc.wantErr && err == nil {
			t.Errorf("SetLevelString(%q): expected error", tc.in)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("SetLevelString(%q): unexpected error %v", tc.in, err)
		}
	}
}
