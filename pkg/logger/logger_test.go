package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anonto42/socially/backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("loud"))
}

func TestNewWritesRollingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "socially.log")
	log := New(&config.Config{Env: "test", LogLevel: "info", LogPath: path, LogMaxSizeMB: 1, LogMaxBackups: 1, LogMaxAgeDays: 1})

	log.Debug("hidden")
	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"env":"test"`)
	assert.NotContains(t, string(data), "hidden")
}
