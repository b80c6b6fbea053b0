package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// Redis holds the connection shared by the response cache and the task queue
type Redis struct {
	Client *redis.Client
}

// NewRedis connects and verifies the server answers before returning
func NewRedis(opt *redis.Options) (*Redis, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	r := &Redis{Client: redis.NewClient(opt)}

	if err := r.Ping(ctx); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("unable to connect to redis at %s: %w", opt.Addr, err)
	}

	return r, nil
}

// Ping checks the connection, bounded by a short timeout
func (r *Redis) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return r.Client.Ping(ctx).Err()
}

// Status reports the cache backend state for health checks
func (r *Redis) Status(ctx context.Context) string {
	if r == nil {
		return "disabled"
	}
	if err := r.Ping(ctx); err != nil {
		return "unavailable"
	}
	return "ok"
}

func (r *Redis) Close() error {
	return r.Client.Close()
}
