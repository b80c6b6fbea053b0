package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ritmdance/studio/cms"
	"github.com/rs/zerolog/log"
)

// ContentCache keeps raw CMS responses in Redis for the revalidation window
type ContentCache struct {
	client *redis.Client
	prefix string
}

// Ensure ContentCache implements cms.Cache
var _ cms.Cache = (*ContentCache)(nil)

func NewContentCache(client *redis.Client, prefix string) *ContentCache {
	return &ContentCache{
		client: client,
		prefix: prefix,
	}
}

func (c *ContentCache) key(key string) string {
	return c.prefix + key
}

// Get returns the cached body for key. ok is false on a miss.
func (c *ContentCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get %s from redis: %w", key, err)
	}

	return value, true, nil
}

// Set stores value under key until ttl elapses
func (c *ContentCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in redis: %w", key, err)
	}

	return nil
}

const scanCount = 100

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// patterns matches every cached response under the collection endpoint: the
// list, single entries and filtered queries
func (c *ContentCache) patterns(collection cms.Collection) []string {
	base := c.key(cms.CacheKey("/api/" + string(collection)))
	return []string{
		globEscaper.Replace(base+"?") + "*",
		globEscaper.Replace(base+"/") + "*",
	}
}

// Invalidate drops every cached response of each collection
func (c *ContentCache) Invalidate(ctx context.Context, collections ...cms.Collection) error {
	if len(collections) == 0 {
		return nil
	}

	var keys []string
	for _, collection := range collections {
		for _, pattern := range c.patterns(collection) {
			iter := c.client.Scan(ctx, 0, pattern, scanCount).Iterator()
			for iter.Next(ctx) {
				keys = append(keys, iter.Val())
			}
			if err := iter.Err(); err != nil {
				return fmt.Errorf("failed to scan cached %s: %w", collection, err)
			}
		}
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached collections: %w", err)
	}

	log.Debug().Strs("keys", keys).Msg("Invalidated cached collections")

	return nil
}
