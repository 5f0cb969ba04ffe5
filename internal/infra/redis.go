package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis dials the cache from a redis:// URL. A configured-but-unreachable
// server is a startup error; leaving REDIS_URL unset skips the cache entirely.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
