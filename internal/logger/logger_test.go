package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"debug text", "debug", "text"},
		{"info json", "info", "json"},
		{"warn level", "warn", "text"},
		{"error level", "error", "text"},
		{"invalid level falls back", "invalid", "text"},
		{"empty format", "info", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, tt.format)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLevelMapping(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"bogus", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := New(tt.level, "text").(*implLogger)
			if log.logger.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", log.logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestLoggerDoesNotPanic(t *testing.T) {
	ctx := context.Background()
	log := New("debug", "text")

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)
}
