package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SECRET", "unit-test-secret")
	t.Setenv("DB_USER", "acara")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_NAME", "acara_test")
}

func TestParse_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "unit-test-secret", cfg.Secret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.True(t, cfg.Cache.Caches("get"))
	assert.False(t, cfg.Cache.Caches("POST"))
	assert.Equal(t, "acara:rl", cfg.RateLimit.Prefix)
}

func TestParse_MissingSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("SECRET", "")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET")
}

func TestParse_RateLimitNormalized(t *testing.T) {
	setRequired(t)
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.RateLimit.Capacity)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.TTL)
}

func TestRedisConfig_Address(t *testing.T) {
	assert.Equal(t, "localhost:6379", RedisConfig{}.Address())
	assert.Equal(t, "cache:6380", RedisConfig{Addr: "cache:6380"}.Address())
	assert.Equal(t, "redis:6379", RedisConfig{Host: "redis", Port: "6379", Addr: "x:1"}.Address())
}
