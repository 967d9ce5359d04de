package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Debug("debug %d", 1)
	log.Info("info %d", 2)
	log.Warn("catalog cache unavailable: %s", "dial tcp")
	log.Error("quote failed for car_id=%d", 42)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "catalog cache unavailable: dial tcp")
	assert.Contains(t, out, "quote failed for car_id=42")
}

func TestNewWithWriter_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "verbose")

	log.Debug("hidden")
	log.Info("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rental.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("Starting server on %s", ":8080")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Starting server on :8080")
}

func TestNew_StdoutOnly(t *testing.T) {
	log, err := New("", "debug")
	require.NoError(t, err)
	assert.NoError(t, log.Close())
}
