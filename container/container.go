package container

import (
	"fmt"

	"github.com/ritmdance/studio/cache"
	"github.com/ritmdance/studio/cms"
	"github.com/ritmdance/studio/config"
	"github.com/ritmdance/studio/storage"
	"github.com/ritmdance/studio/tasks"
	"github.com/rs/zerolog/log"
)

type Container struct {
	Config *config.Config
	Redis  *storage.Redis
	Cache  *cache.ContentCache
	CMS    *cms.Client
	Worker tasks.Client
}

func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{
		Config: cfg,
	}

	opts := cms.Options{
		BaseURL:  cfg.CMSURL,
		Token:    cfg.CMSToken,
		Timeout:  cfg.CMSTimeout,
		CacheTTL: cfg.CacheTTL,
	}

	if cfg.CacheEnabled {
		// Initialize redis client
		redisClient, err := storage.NewRedis(cfg.RedisOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}

		c.Redis = redisClient
		c.Cache = cache.NewContentCache(redisClient.Client, cfg.CachePrefix)
		opts.Cache = c.Cache
	}

	// Initialize cms client
	c.CMS = cms.NewClient(opts)

	return c, nil
}

// Close gracefully shuts down all container resources
func (c *Container) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis connection")
		}
	}
}
