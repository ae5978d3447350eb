package repositories

import (
	"context"
	"encoding/json"
	"time"

	"aura-crm/internal/models"
	"aura-crm/pkg/cache"

	"github.com/go-redis/redis/v8"
)

type propertyCache struct {
	client *redis.Client
}

func NewPropertyCache(client *redis.Client) PropertyCache {
	return &propertyCache{client: client}
}

func (c *propertyCache) GetProperty(ctx context.Context, id uint) (*models.Property, error) {
	data, err := c.client.Get(ctx, cache.PropertyKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var property models.Property
	if err := json.Unmarshal([]byte(data), &property); err != nil {
		// Stale or corrupt entry; treat as a miss.
		_ = c.client.Del(ctx, cache.PropertyKey(id)).Err()
		return nil, nil
	}
	return &property, nil
}

func (c *propertyCache) SetProperty(ctx context.Context, property *models.Property, ttl time.Duration) error {
	data, err := json.Marshal(property)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cache.PropertyKey(property.ID), data, ttl).Err()
}

func (c *propertyCache) Invalidate(ctx context.Context, id uint) error {
	return c.client.Del(ctx, cache.PropertyKey(id)).Err()
}

// noopPropertyCache is used when Redis is not configured.
type noopPropertyCache struct{}

func NewNoopPropertyCache() PropertyCache {
	return &noopPropertyCache{}
}

func (noopPropertyCache) GetProperty(ctx context.Context, id uint) (*models.Property, error) {
	return nil, nil
}

func (noopPropertyCache) SetProperty(ctx context.Context, property *models.Property, ttl time.Duration) error {
	return nil
}

func (noopPropertyCache) Invalidate(ctx context.Context, id uint) error {
	return nil
}
