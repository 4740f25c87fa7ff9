package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_map_dashboard/internal/models"
	"github.com/shenikar/incident_map_dashboard/internal/service"
)

const locationsCacheKey = "locations:all"

// RedisLocationCache хранит снимок GET /api/locations в Redis
type RedisLocationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLocationCache(client *redis.Client, ttl time.Duration) service.LocationCache {
	return &RedisLocationCache{client: client, ttl: ttl}
}

// Get возвращает снимок из кэша. Промах - (nil, nil).
func (c *RedisLocationCache) Get(ctx context.Context) ([]*models.Location, error) {
	val, err := c.client.Get(ctx, locationsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get locations from cache: %w", err)
	}

	var locations []*models.Location
	if err := json.Unmarshal(val, &locations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal locations from cache: %w", err)
	}
	return locations, nil
}

// Set сохраняет снимок в Redis
func (c *RedisLocationCache) Set(ctx context.Context, locations []*models.Location) error {
	val, err := json.Marshal(locations)
	if err != nil {
		return fmt.Errorf("failed to marshal locations for cache: %w", err)
	}
	if err := c.client.Set(ctx, locationsCacheKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set locations in cache: %w", err)
	}
	return nil
}

// Invalidate удаляет снимок после любой записи
func (c *RedisLocationCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, locationsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate locations cache: %w", err)
	}
	return nil
}

// NoopLocationCache используется, когда Redis не настроен
type NoopLocationCache struct{}

func NewNoopLocationCache() service.LocationCache {
	return NoopLocationCache{}
}

func (NoopLocationCache) Get(context.Context) ([]*models.Location, error) { return nil, nil }

func (NoopLocationCache) Set(context.Context, []*models.Location) error { return nil }

func (NoopLocationCache) Invalidate(context.Context) error { return nil }
