package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/ritmdance/studio/cms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableCache(t *testing.T) *ContentCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	return NewContentCache(client, "test:")
}

func memoryBackedCache(t *testing.T, prefix string) (*ContentCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewContentCache(client, prefix), server
}

func TestKeyIsPrefixed(t *testing.T) {
	c := NewContentCache(nil, "studio:")

	assert.Equal(t, "studio:cms:/api/classes?populate=*", c.key("cms:/api/classes?populate=*"))
}

func TestInvalidateNothing(t *testing.T) {
	assert.NoError(t, unreachableCache(t).Invalidate(context.Background()))
}

func TestErrorsAreReturned(t *testing.T) {
	c := unreachableCache(t)
	ctx := context.Background()

	value, ok, err := c.Get(ctx, "cms:/api/events?populate=*")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)

	assert.Error(t, c.Set(ctx, "cms:/api/events?populate=*", []byte(`{}`), time.Minute))
	assert.Error(t, c.Invalidate(ctx, cms.Events))
}

func TestSetAndGet(t *testing.T) {
	c, server := memoryBackedCache(t, "studio:")
	ctx := context.Background()

	key := cms.CacheKey(cms.Services.Path())
	require.NoError(t, c.Set(ctx, key, []byte(`{"data":[{"id":1}]}`), time.Minute))

	value, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"data":[{"id":1}]}`, string(value))
	assert.Equal(t, time.Minute, server.TTL("studio:"+key))

	_, ok, err = c.Get(ctx, cms.CacheKey(cms.Events.Path()))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvalidateDropsEveryResponseOfCollection(t *testing.T) {
	c, server := memoryBackedCache(t, "studio[1]:")
	ctx := context.Background()

	stale := []string{
		cms.CacheKey(cms.BlogPosts.Path()),
		cms.CacheKey("/api/blog-posts?filters[slug][$eq]=first-steps&populate=*"),
		cms.CacheKey("/api/blog-posts?filters%5Bslug%5D%5B%24eq%5D=missing&populate=*"),
		cms.CacheKey(cms.Events.ItemPath(4)),
		cms.CacheKey(cms.Events.Path()),
	}
	kept := []string{
		cms.CacheKey(cms.Classes.Path()),
		cms.CacheKey(cms.Classes.ItemPath(4)),
		cms.CacheKey("/api/blog-posts-archive?populate=*"),
	}

	for _, key := range append(append([]string{}, stale...), kept...) {
		require.NoError(t, c.Set(ctx, key, []byte(`{"data":[{"id":1}]}`), time.Hour))
	}
	require.NoError(t, server.Set("other:"+cms.CacheKey(cms.Events.Path()), "x"))

	require.NoError(t, c.Invalidate(ctx, cms.BlogPosts, cms.Events))

	for _, key := range stale {
		assert.False(t, server.Exists("studio[1]:"+key), key)
	}
	for _, key := range kept {
		assert.True(t, server.Exists("studio[1]:"+key), key)
	}
	assert.True(t, server.Exists("other:"+cms.CacheKey(cms.Events.Path())))
}

func TestInvalidateWithoutCachedKeys(t *testing.T) {
	c, _ := memoryBackedCache(t, "studio:")

	assert.NoError(t, c.Invalidate(context.Background(), cms.Locations))
}
