package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xtree/xlog"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "xsort.yaml", "")
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	require.False(t, cfg.Reverse)
	require.Empty(t, cfg.Output)
	require.True(t, cfg.Fold)
	require.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
	require.Equal(t, defaultLogLevel, cfg.Log.Level)
	require.Equal(t, defaultLogFormat, cfg.Log.Format)
	require.False(t, cfg.Metrics.Enabled)
	require.Equal(t, defaultMetricsInterval, cfg.Metrics.Interval)

	size, err := cfg.MaxLineBytes()
	require.NoError(t, err)
	require.Equal(t, 16*1024*1024, size)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "xsort.yaml", `
reverse: true
fold: false
workers: 3
max_line: 64KiB
log:
  level: info
  format: json
metrics:
  enabled: true
  interval: 250ms
`)
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	require.True(t, cfg.Reverse)
	require.False(t, cfg.Fold)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, 250*time.Millisecond, cfg.Metrics.Interval)

	size, err := cfg.MaxLineBytes()
	require.NoError(t, err)
	require.Equal(t, 64*1024, size)
}

func TestLoadConfigEnvAndFlags(t *testing.T) {
	path := writeFile(t, t.TempDir(), "xsort.yaml", "workers: 3\n")
	t.Setenv("XSORT_WORKERS", "5")
	t.Setenv("XSORT_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Workers)
	require.Equal(t, "debug", cfg.Log.Level)

	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--workers", "2", "-r", "--log-level", "error"}))
	cfg, err = LoadConfig(path, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Workers)
	require.True(t, cfg.Reverse)
	require.Equal(t, "error", cfg.Log.Level)
	// the unchanged flags keep the lower layers
	require.True(t, cfg.Fold)
}

func TestLoadConfigInvalid(t *testing.T) {
	type testcase struct {
		name    string
		content string
		err     error
	}
	testcases := []testcase{
		{name: "workers", content: "workers: -1\n", err: ErrInvalidWorkers},
		{name: "max line", content: "max_line: lots\n", err: ErrInvalidMaxLine},
		{name: "zero max line", content: "max_line: 0B\n", err: ErrInvalidMaxLine},
		{name: "log level", content: "log:\n  level: trace\n", err: xlog.ErrUnknownLevel},
		{name: "log format", content: "log:\n  format: xml\n", err: xlog.ErrUnknownEncoder},
		{name: "metrics interval", content: "metrics:\n  enabled: true\n  interval: 0s\n", err: ErrInvalidMetricsInterval},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			path := writeFile(tt, tt.TempDir(), "xsort.yaml", tc.content)
			_, err := LoadConfig(path, nil)
			require.ErrorIs(tt, err, tc.err)
		})
	}

	path := writeFile(t, t.TempDir(), "xsort.yaml", "workers: [\n")
	_, err := LoadConfig(path, nil)
	require.ErrorContains(t, err, "read config")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}
