package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"myfragance/internal/model"

	"github.com/redis/go-redis/v9"
)

// RecommendationCache stores the ranked candidate buffer for a session,
// plus the set of suggestions the client has hidden. Hiding consumes from
// the buffer instead of forcing a recompute.
type RecommendationCache interface {
	SetBuffer(ctx context.Context, sessionID string, recs []model.Recommendation) error
	GetBuffer(ctx context.Context, sessionID string) ([]model.Recommendation, error)
	Hide(ctx context.Context, sessionID, perfumeKey string) error
	Hidden(ctx context.Context, sessionID string) (map[string]bool, error)
	Delete(ctx context.Context, sessionID string) error
}

type recommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRecommendationCache creates a new recommendation cache.
func NewRecommendationCache(client *redis.Client) RecommendationCache {
	return &recommendationCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *recommendationCache) bufferKey(sessionID string) string {
	return fmt.Sprintf("session:%s:recs", sessionID)
}

func (c *recommendationCache) hiddenKey(sessionID string) string {
	return fmt.Sprintf("session:%s:hidden", sessionID)
}

func (c *recommendationCache) SetBuffer(ctx context.Context, sessionID string, recs []model.Recommendation) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.bufferKey(sessionID), data, c.ttl).Err()
}

func (c *recommendationCache) GetBuffer(ctx context.Context, sessionID string) ([]model.Recommendation, error) {
	data, err := c.client.Get(ctx, c.bufferKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var recs []model.Recommendation
	if err := json.Unmarshal([]byte(data), &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *recommendationCache) Hide(ctx context.Context, sessionID, perfumeKey string) error {
	key := c.hiddenKey(sessionID)
	if err := c.client.SAdd(ctx, key, perfumeKey).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

func (c *recommendationCache) Hidden(ctx context.Context, sessionID string) (map[string]bool, error) {
	members, err := c.client.SMembers(ctx, c.hiddenKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	hidden := make(map[string]bool, len(members))
	for _, m := range members {
		hidden[m] = true
	}
	return hidden, nil
}

func (c *recommendationCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.bufferKey(sessionID), c.hiddenKey(sessionID)).Err()
}
