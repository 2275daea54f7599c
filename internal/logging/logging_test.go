package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lazyrange/internal/logging"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.Level(true))
	assert.Equal(t, slog.LevelInfo, logging.Level(false))
}

func TestNewFansOut(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "log"))
	require.NoError(t, err)
	defer f.Close()

	extra := &bytes.Buffer{}
	logger := logging.New(f, false, slog.NewJSONHandler(extra, nil))
	logger.Debug("hidden")
	logger.Info("collected", "count", 10)

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "collected")
	assert.Contains(t, string(data), "count=10")
	assert.NotContains(t, string(data), "hidden")
	assert.NotContains(t, string(data), "\x1b[", "no colour outside a terminal")

	assert.Contains(t, extra.String(), `"msg":"collected"`)
}
