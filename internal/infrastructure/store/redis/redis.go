// Package redis provides the production KV driver for the session, preference
// and admin stores, plus connection setup.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the connectivity check at startup. Session reads sit on
// the hot path of every guarded request, so an unreachable redis is a fatal
// startup condition, not something to discover on the first login.
const pingTimeout = 5 * time.Second

// Config selects the redis database that holds the session keys.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect builds a redis client and proves the connection with a ping before
// any store is layered on it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = pingTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
