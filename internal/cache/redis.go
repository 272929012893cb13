// Package cache manages the Redis client used for rate limiting and health checks.
package cache

import (
	"context"
	"log/slog"
	"time"

	"lumeo/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Client is the global Redis client. It stays nil when Redis is unreachable;
// callers treat that as "no limiter" rather than a fatal condition.
var Client *redis.Client

// InitRedis connects to Redis at the given address.
func InitRedis(addr string) {
	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis unavailable, continuing without rate limiting",
			slog.String("error", err.Error()))
		Client = nil
	} else {
		middleware.Logger.Info("Redis connected successfully")
	}
}

// GetClient returns the global Redis client, which may be nil.
func GetClient() *redis.Client {
	return Client
}
