package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoeppe/catalog-api/app/config"
)

func TestNewLoggerLevels(t *testing.T) {
	testCases := []struct {
		name        string
		level       string
		expectDebug bool
	}{
		{name: "info hides debug", level: "info", expectDebug: false},
		{name: "debug shows debug", level: "DEBUG", expectDebug: true},
		{name: "invalid falls back to info", level: "verbose", expectDebug: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newLogger(&config.Config{LogLevel: tc.level, LogFormat: "json"}, &buf)

			log.Debug().Msg("debug line")
			log.Info().Str("component", "test").Msg("info line")

			assert.Equal(t, tc.expectDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
			assert.Contains(t, buf.String(), "info line")
		})
	}
}

func TestNewLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&config.Config{LogLevel: "info"}, &buf)

	log.Info().Str("request_id", "abc").Msg("request completed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "request completed", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewLoggerWritesFile(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "catalog.log")
	log := newLogger(&config.Config{LogLevel: "info", LogFile: file}, &buf)

	log.Info().Msg("to file")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
