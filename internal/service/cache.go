package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pageza/nutriscope/backend/internal/units"
)

const graphCacheKey = "nutriscope:conversion-graph"

// GraphSnapshot is the serialisable form of the conversion graph.
type GraphSnapshot struct {
	Units       []units.Unit       `json:"units"`
	Conversions []units.Conversion `json:"conversions"`
}

// Graph builds the in-memory graph.
func (s *GraphSnapshot) Graph() *units.Graph {
	return units.NewGraph(s.Units, s.Conversions)
}

// GraphCache stores the graph snapshot between requests. Get returns nil on a miss.
type GraphCache interface {
	Get(ctx context.Context) (*GraphSnapshot, error)
	Set(ctx context.Context, snap *GraphSnapshot) error
	Invalidate(ctx context.Context) error
}

// RedisGraphCache keeps the snapshot as JSON under a single key.
type RedisGraphCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisGraphCache creates a cache. A zero ttl keeps entries until invalidated.
func NewRedisGraphCache(client redis.Cmdable, ttl time.Duration) *RedisGraphCache {
	return &RedisGraphCache{client: client, ttl: ttl}
}

func (c *RedisGraphCache) Get(ctx context.Context) (*GraphSnapshot, error) {
	data, err := c.client.Get(ctx, graphCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap GraphSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *RedisGraphCache) Set(ctx context.Context, snap *GraphSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, graphCacheKey, data, c.ttl).Err()
}

func (c *RedisGraphCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, graphCacheKey).Err()
}

// NoGraphCache always misses.
type NoGraphCache struct{}

func (NoGraphCache) Get(context.Context) (*GraphSnapshot, error) { return nil, nil }
func (NoGraphCache) Set(context.Context, *GraphSnapshot) error   { return nil }
func (NoGraphCache) Invalidate(context.Context) error            { return nil }
