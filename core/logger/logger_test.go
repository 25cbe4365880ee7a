package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/greeter/core/logger"
)

func TestNewProduction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithProduction("greeter"), logger.WithOutput(&buf))

	log.Debug("hidden")
	log.Info("visible", logger.Component("test"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "greeter", record["service"])
	assert.Equal(t, "test", record["component"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewDevelopment(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("greeter"), logger.WithOutput(&buf))

	log.Debug("debug line", logger.Path("/"))

	out := buf.String()
	assert.Contains(t, out, "debug line")
	assert.Contains(t, out, "path=/")
	assert.Contains(t, out, "service=greeter")
	assert.NotContains(t, out, "\x1b[", "buffer is not a terminal, output must not be coloured")
}

func TestNewWithColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithColor(true))
	log.Error("boom", logger.Error(errors.New("bad")))

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestWithLevelAndAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithLevel(slog.LevelWarn),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("env", "test")),
	)

	log.Info("dropped")
	log.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"env":"test"`)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.Query("").Equal(slog.Attr{}))

	assert.Equal(t, "request_id", logger.RequestID("abc").Key)
	assert.Equal(t, int64(404), logger.Status(404).Value.Int64())
	assert.Equal(t, 50*time.Millisecond, logger.Latency(50*time.Millisecond).Value.Duration())
	assert.Equal(t, "GET", logger.Method("GET").Value.String())
	assert.Equal(t, "a=1", logger.Query("a=1").Value.String())
	assert.Equal(t, "127.0.0.1:1", logger.RemoteAddr("127.0.0.1:1").Value.String())
	assert.Equal(t, "es", logger.Locale("es").Value.String())

	g := logger.Group("req", logger.Method("GET"), logger.Path("/"))
	require.Equal(t, slog.KindGroup, g.Value.Kind())
	assert.Len(t, g.Value.Group(), 2)
}
