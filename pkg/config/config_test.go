package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "JWT_SECRET", "TOKEN_TTL", "REDIS_ADDR", "REDIS_DB", "LOG_LEVEL", "LOG_MAX_SIZE_MB"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "socially:revalidate", cfg.RevalidateChannel)
	assert.Equal(t, 100, cfg.LogMaxSizeMB)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOG_MAX_BACKUPS", "not-a-number")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 3, cfg.LogMaxBackups)
}

func TestInitDBRequiresConnString(t *testing.T) {
	_, err := InitDB(&Config{}, nil)
	assert.EqualError(t, err, "POSTGRES_CONN_STR environment variable not set")
}
