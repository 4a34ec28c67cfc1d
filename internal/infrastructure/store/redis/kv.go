package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// KV adapts a redis client to the store.KV contract. MSET is atomic on the
// server, which gives the stores their all-or-nothing multi-key writes.
type KV struct {
	client *redis.Client
}

func NewKV(client *redis.Client) *KV {
	return &KV{client: client}
}

func (k *KV) MSet(ctx context.Context, pairs map[string]string) error {
	if len(pairs) == 0 {
		return nil
	}
	flat := make([]interface{}, 0, len(pairs)*2)
	for key, value := range pairs {
		flat = append(flat, key, value)
	}
	if err := k.client.MSet(ctx, flat...).Err(); err != nil {
		return fmt.Errorf("kv mset: %w", err)
	}
	return nil
}

func (k *KV) MGet(ctx context.Context, keys ...string) (map[string]string, error) {
	if len(keys) == 0 {
		return map[string]string{}, nil
	}
	values, err := k.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("kv mget: %w", err)
	}

	found := make(map[string]string, len(keys))
	for i, raw := range values {
		if raw == nil {
			continue
		}
		if s, ok := raw.(string); ok {
			found[keys[i]] = s
		}
	}
	return found, nil
}

func (k *KV) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := k.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("kv del: %w", err)
	}
	return nil
}
