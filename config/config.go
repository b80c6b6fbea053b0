package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	EncryptionKey string `env:"ENCRYPTION_KEY" envDefault:"secret"`

	// An empty CMS_API_URL is allowed: every read returns empty content.
	CMSURL     string        `env:"CMS_API_URL"`
	CMSToken   string        `env:"CMS_API_TOKEN"`
	CMSTimeout time.Duration `env:"CMS_TIMEOUT" envDefault:"0s"`

	CacheEnabled bool          `env:"CACHE_ENABLED" envDefault:"true"`
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	CachePrefix  string        `env:"CACHE_PREFIX" envDefault:"studio:"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDatabase int    `env:"REDIS_DATABASE" envDefault:"0"`

	RefreshSchedule  string `env:"REFRESH_SCHEDULE" envDefault:"@every 55m"`
	RevalidateSecret string `env:"REVALIDATE_SECRET"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	RegistrationCities  []string `env:"REGISTRATION_CITIES" envDefault:"Suceava,Botoșani,Rădăuți" envSeparator:","`
	RegistrationSources []string `env:"REGISTRATION_SOURCES" envDefault:"Facebook,Instagram,Google,Iulius Mall,Prieteni,Petrecere" envSeparator:","`
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.CMSURL = strings.TrimRight(strings.TrimSpace(cfg.CMSURL), "/")
	cfg.CORSAllowedOrigins = trimAll(cfg.CORSAllowedOrigins)
	cfg.RegistrationCities = trimAll(cfg.RegistrationCities)
	cfg.RegistrationSources = trimAll(cfg.RegistrationSources)

	if cfg.CacheEnabled && cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("CACHE_TTL must be positive when caching is enabled")
	}

	return cfg, nil
}

// RedisOptions builds the redis client options
func (c *Config) RedisOptions() *redis.Options {
	return &redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDatabase,
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
