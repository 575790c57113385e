package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		log   func(l *SlogLogger)
		level string
	}{
		{"debug", func(l *SlogLogger) { l.Debug(ctx, "msg") }, "DEBUG"},
		{"info", func(l *SlogLogger) { l.Info(ctx, "msg") }, "INFO"},
		{"warn", func(l *SlogLogger) { l.Warn(ctx, "msg") }, "WARN"},
		{"error", func(l *SlogLogger) { l.Error(ctx, "msg") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferLogger()
			tt.log(l)
			rec := lastRecord(t, buf)
			assert.Equal(t, tt.level, rec["level"])
			assert.Equal(t, "msg", rec["msg"])
		})
	}
}

func TestNewJSONLogger_WritesJSONLines(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewJSONLogger(buf)

	l.Info(context.Background(), "started", "addr", ":8001")

	rec := lastRecord(t, buf)
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "started", rec["msg"])
	assert.Equal(t, ":8001", rec["addr"])
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	l, buf := newBufferLogger()

	child := l.With("module", "httpapi")
	child.Info(context.Background(), "request handled", "status", 200)

	rec := lastRecord(t, buf)
	assert.Equal(t, "httpapi", rec["module"])
	assert.Equal(t, float64(200), rec["status"])
}
