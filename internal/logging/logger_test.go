package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestNew_FileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "todo.log")

	logger, err := New(Options{File: path, Level: "info"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("task added", "num", 1)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1, "debug record should be filtered at info level")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "task added", rec["msg"])
	assert.Equal(t, float64(1), rec["num"])
}

func TestNew_DebugToStderr(t *testing.T) {
	var stderr bytes.Buffer

	logger, err := New(Options{Level: "error", Debug: true, Stderr: &stderr})
	require.NoError(t, err)

	logger.Debug("loading", "path", "tasks.json")
	assert.Contains(t, stderr.String(), "msg=loading")
	assert.Contains(t, stderr.String(), "path=tasks.json")
	assert.NoError(t, logger.Close())
}

func TestNew_DefaultDiscards(t *testing.T) {
	logger, err := New(Options{Level: "debug"})
	require.NoError(t, err)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
	assert.NoError(t, logger.Close())
}
