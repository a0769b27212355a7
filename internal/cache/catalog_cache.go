package cache

import (
	"context"
	"encoding/json"
	"time"

	"myfragance/internal/model"

	"github.com/redis/go-redis/v9"
)

// CatalogCache is the Redis snapshot of the perfume catalog: a plain
// get/put/invalidate key-value store with a last-sync timestamp.
type CatalogCache interface {
	Put(ctx context.Context, perfumes []model.Perfume) error
	Get(ctx context.Context) ([]model.Perfume, error)
	LastSync(ctx context.Context) (time.Time, error)
	Invalidate(ctx context.Context) error
}

type catalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a new catalog cache.
func NewCatalogCache(client *redis.Client) CatalogCache {
	return &catalogCache{
		client: client,
		ttl:    6 * time.Hour,
	}
}

const (
	catalogKey  = "catalog:perfumes"
	lastSyncKey = "catalog:lastSync"
)

func (c *catalogCache) Put(ctx context.Context, perfumes []model.Perfume) error {
	data, err := json.Marshal(perfumes)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, catalogKey, data, c.ttl).Err(); err != nil {
		return err
	}
	return c.client.Set(ctx, lastSyncKey, time.Now().UTC().Format(time.RFC3339), c.ttl).Err()
}

func (c *catalogCache) Get(ctx context.Context) ([]model.Perfume, error) {
	data, err := c.client.Get(ctx, catalogKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var perfumes []model.Perfume
	if err := json.Unmarshal([]byte(data), &perfumes); err != nil {
		return nil, err
	}
	return perfumes, nil
}

func (c *catalogCache) LastSync(ctx context.Context) (time.Time, error) {
	val, err := c.client.Get(ctx, lastSyncKey).Result()
	if err == redis.Nil {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, val)
}

func (c *catalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey, lastSyncKey).Err()
}
