package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/nutriscope/backend/config"
)

func TestRedisOptionsFromConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.RedisHost = "cache"
	cfg.RedisPort = "6380"
	cfg.RedisPassword = "secret"
	cfg.RedisDB = 2
	cfg.RedisPoolSize = 25
	cfg.RedisDialTimeout = 2 * time.Second

	opts, err := redisOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, RedisClientName, opts.ClientName)
	assert.Equal(t, 25, opts.PoolSize)
	assert.Equal(t, 2*time.Second, opts.DialTimeout)
}

func TestRedisOptionsURLKeepsPoolSettings(t *testing.T) {
	cfg := config.Defaults()
	cfg.RedisURL = "redis://:pw@redis.internal:6379/3"
	cfg.RedisPoolSize = 40

	opts, err := redisOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6379", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, RedisClientName, opts.ClientName)
	assert.Equal(t, 40, opts.PoolSize)
	assert.Equal(t, 5*time.Second, opts.DialTimeout)
}

func TestRedisOptionsBadURL(t *testing.T) {
	cfg := config.Defaults()
	cfg.RedisURL = "http://not-redis"

	_, err := redisOptions(cfg)
	assert.ErrorContains(t, err, "failed to parse Redis URL")
}
