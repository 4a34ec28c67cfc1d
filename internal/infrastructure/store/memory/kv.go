// Package memory provides an in-process KV driver. It backs tests and local
// development; the production driver is redis. A single KV instance is one
// shared namespace, so two stores built over the same instance see each
// other's keys exactly as they would on a shared redis database.
package memory

import (
	"context"
	"sync"
)

type KV struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewKV() *KV {
	return &KV{data: make(map[string]string)}
}

func (k *KV) MSet(_ context.Context, pairs map[string]string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	for key, value := range pairs {
		k.data[key] = value
	}
	return nil
}

func (k *KV) MGet(_ context.Context, keys ...string) (map[string]string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	found := make(map[string]string, len(keys))
	for _, key := range keys {
		if value, ok := k.data[key]; ok {
			found[key] = value
		}
	}
	return found, nil
}

func (k *KV) Del(_ context.Context, keys ...string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	for _, key := range keys {
		delete(k.data, key)
	}
	return nil
}
