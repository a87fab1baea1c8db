package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	Cfg = Config{}
	t.Cleanup(viper.Reset)
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	resetViper(t)

	require.NoError(t, LoadConfig(t.TempDir()))

	assert.Equal(t, DefaultServerPort, Cfg.Server.Port)
	assert.Equal(t, DefaultAppReviewLimit, Cfg.App.ReviewLimit)
	assert.Equal(t, DefaultLocale, Cfg.App.Locale)
	assert.Equal(t, DefaultSyncMinOccurrences, Cfg.App.SyncMinOccurrences)
	assert.Equal(t, DefaultAuthEnabled, Cfg.Auth.Enabled)
	assert.Equal(t, DefaultSyncInterval, Cfg.Sync.Interval)
	assert.Empty(t, Cfg.SRS.Weights)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	yaml := `
server:
  port: ":9090"
app:
  review_limit: 5
  locale: ja
  sync_min_occurrences: 1
sync:
  enabled: true
  interval: 30m
srs:
  weights: [0.4, 0.6, 2.4, 5.8, 4.93, 0.94, 0.86, 0.01, 1.49, 0.14, 0.94, 2.18, 0.05, 0.34, 1.26, 0.29, 2.61]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("APP_APP_REVIEW_LIMIT", "7")
	t.Setenv("APP_DATABASE_URL", "postgres://u:p@localhost:5432/db?sslmode=disable")

	require.NoError(t, LoadConfig(dir))

	assert.Equal(t, ":9090", Cfg.Server.Port)
	assert.Equal(t, 7, Cfg.App.ReviewLimit, "環境変数がファイルより優先される")
	assert.Equal(t, "ja", Cfg.App.Locale)
	assert.Equal(t, MinSyncOccurrences, Cfg.App.SyncMinOccurrences, "下限に丸められる")
	assert.True(t, Cfg.Sync.Enabled)
	assert.Equal(t, 30*time.Minute, Cfg.Sync.Interval)
	assert.Len(t, Cfg.SRS.Weights, 17)
	assert.Equal(t, "postgres://u:p@localhost:5432/db?sslmode=disable", Cfg.Database.URL)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{" error ", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseLogLevel(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestNewLogger_RespectsLevelVar(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	levelVar, ok := NewLevelVar("warn")
	require.True(t, ok)

	var buf bytes.Buffer
	logger := NewLogger(&buf, levelVar)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	levelVar.Set(slog.LevelInfo)
	logger.Info("visible")
	assert.Contains(t, buf.String(), `"msg":"visible"`)
}
