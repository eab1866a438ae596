package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		logger := New(&bytes.Buffer{}, "octc", tt.level, "json")
		assert.Equal(t, tt.want, logger.GetLevel(), "level %q", tt.level)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "octc", "info", "json")

	logger.Debug().Msg("hidden")
	logger.Info().Str("stage", "done").Msg("translated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "octc", entry["app"])
	assert.Equal(t, "done", entry["stage"])
	assert.Equal(t, "translated", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "octc", "info", "console")

	logger.Info().Msg("translated")

	assert.Contains(t, buf.String(), "translated")
	assert.NotContains(t, buf.String(), `"message"`)
}
