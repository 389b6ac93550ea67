package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/jumpr/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_SilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, logger.Init(logger.Options{Console: &buf}))
	t.Cleanup(func() { _ = logger.Close() })

	logger.Info().Msg("hidden")
	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestInit_VerboseWritesConsole(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, logger.Init(logger.Options{Verbose: true, Console: &buf}))
	t.Cleanup(func() { _ = logger.Close() })

	logger.Debug().Str("path", "/tmp").Msg("walking")
	assert.Contains(t, buf.String(), "walking")
	assert.Contains(t, buf.String(), "/tmp")
}

func TestInit_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "jumpr.log")
	require.NoError(t, logger.Init(logger.Options{FilePath: path, MaxSizeMB: 1, MaxBackups: 1}))
	assert.Equal(t, path, logger.FilePath())

	logger.Warn().Msg("config fallback")
	require.NoError(t, logger.Close())
	assert.Empty(t, logger.FilePath())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"config fallback"`)
	assert.Contains(t, string(data), `"level":"warn"`)
}

func TestClose_WithoutFile(t *testing.T) {
	assert.NoError(t, logger.Close())
}
