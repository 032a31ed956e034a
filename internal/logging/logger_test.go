package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/domainlens-cli/internal/config"
	"github.com/KaramelBytes/domainlens-cli/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWithWriter(&buf, zerolog.InfoLevel).With("session", "work")

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.Warn("analyze skipped", "name", "ghost", "error", errors.New("dataset not found"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "analyze skipped", entry["message"])
	assert.Equal(t, "work", entry["session"])
	assert.Equal(t, "ghost", entry["name"])
	assert.Equal(t, "dataset not found", entry["error"])
}

func TestGlobalDefaultsToNop(t *testing.T) {
	logging.SetGlobal(nil)
	assert.NotNil(t, logging.Global())
	logging.Global().Debug("nothing happens")

	var buf bytes.Buffer
	logging.SetGlobal(logging.NewWithWriter(&buf, zerolog.DebugLevel))
	t.Cleanup(func() { logging.SetGlobal(nil) })
	logging.Global().Debug("visible", "k", 1)
	assert.Contains(t, buf.String(), `"k":1`)
}

func TestNewWritesToFile(t *testing.T) {
	path := t.TempDir() + "/logs/dl.log"
	l, err := logging.New(logging.Options{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	l.Info("hello", "session", "work")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "work", entry["session"])
}

func TestNewFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dl.log")
	l, err := logging.NewFromConfig(config.Global{LogLevel: "debug", LogFormat: "json", LogOutput: path})
	require.NoError(t, err)
	child := l.With("session", "work")
	child.Debug("config loaded")
	// children share the writer but not the file handle
	require.NoError(t, child.Close())
	l.Debug("still open")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"message":"config loaded"`)
	assert.Contains(t, lines[1], `"message":"still open"`)

	// warn is the default level; stderr has nothing to close
	l, err = logging.NewFromConfig(config.Global{})
	require.NoError(t, err)
	assert.NoError(t, l.Close())
}
