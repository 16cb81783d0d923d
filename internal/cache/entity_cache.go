package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/rueidis"
)

// EntityCache is a read-through cache for single entities keyed by id.
// A nil *EntityCache (or one built without a client) is a usable no-op,
// so services never have to branch on whether caching is configured.
type EntityCache struct {
	client rueidis.Client
	ttl    time.Duration
}

func New(client rueidis.Client, ttl time.Duration) *EntityCache {
	return &EntityCache{client: client, ttl: ttl}
}

func TaskKey(id string) string { return "task:" + id }
func UserKey(id string) string { return "user:" + id }

// Get unmarshals the cached entity into dest and reports a hit.
func (c *EntityCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}

	result := c.client.Do(ctx, c.client.B().Get().Key(key).Build())
	if err := result.Error(); err != nil {
		if !rueidis.IsRedisNil(err) {
			log.Printf("cache: get %s failed: %v", key, err)
		}
		return false
	}

	raw, err := result.AsBytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("cache: stale payload at %s: %v", key, err)
		return false
	}
	return true
}

func (c *EntityCache) Set(ctx context.Context, key string, v any) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	cmd := c.client.B().Set().Key(key).Value(string(raw)).Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		log.Printf("cache: set %s failed: %v", key, err)
	}
}

func (c *EntityCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}

	cmd := c.client.B().Del().Key(keys...).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		log.Printf("cache: invalidate %v failed: %v", keys, err)
	}
}
