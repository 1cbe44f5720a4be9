package iologger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/txlist/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_File(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	err := Init(dir, cfg, false, slog.String("run_id", "abc"))
	require.NoError(t, err)

	slog.Info("first")
	slog.Debug("hidden")

	content, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"first"`)
	assert.Contains(t, string(content), `"run_id":"abc"`)
	assert.NotContains(t, string(content), "hidden")

	err = Init(dir, cfg, true)
	require.NoError(t, err)
	slog.Info("second")

	content, err = os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), "first", "append keeps old records")
	assert.Contains(t, string(content), "second")

	err = Init(dir, cfg, false)
	require.NoError(t, err)
	content, err = os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Empty(t, content, "fresh log file is truncated")
}

func TestInit_BadDir(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	dir := filepath.Join(t.TempDir(), "missing")
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	err := Init(dir, cfg, false)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		res   slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}

	for _, v := range tests {
		t.Run(v.level, func(t *testing.T) {
			assert.Equal(t, v.res, parseLevel(v.level))
		})
	}
}
