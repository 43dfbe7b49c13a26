//go:build unit

package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"seva-console/internal/pkg/config"
	"seva-console/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestNew_JSONWithTimeFormat(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(config.LogConfig{Level: "info", Format: "json", TimeFormat: "2006"}, &buf)

	l.Debug("hidden")
	l.Info("shown", "path", "/book-seva")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "/book-seva", entry["path"])
	assert.Len(t, entry["time"], 4)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(config.LogConfig{Level: "warn", Format: "text"}, &buf)

	l.Info("hidden")
	l.Warn("retrying request", "attempt", 1)

	assert.Contains(t, buf.String(), "level=WARN msg=\"retrying request\" attempt=1")
	assert.NotContains(t, buf.String(), "hidden")
}
