package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := Configure(Config{Writer: &buf})
	require.NoError(t, err)
	defer closeFn()

	logger.Debug("probe", "stage", "validation")
	logger.Info("summary")

	out := buf.String()
	assert.Contains(t, out, "probe")
	assert.Contains(t, out, "stage=validation")
	assert.Contains(t, out, "summary")
}

func TestConfigureMirrorsToFile(t *testing.T) {
	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "train.log")
	logger, closeFn, err := Configure(Config{Writer: &buf, LogPath: logPath})
	require.NoError(t, err)

	logger.Info("checkpoint saved", "path", "w1.json")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "checkpoint saved")
	assert.Contains(t, buf.String(), "checkpoint saved")
}

func TestConfigureBadLogPath(t *testing.T) {
	_, _, err := Configure(Config{LogPath: filepath.Join(t.TempDir(), "missing", "train.log")})
	require.Error(t, err)
}
