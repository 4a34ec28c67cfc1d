// Package store implements the persisted session, preference and admin
// namespaces over a minimal key/value abstraction. Every multi-key write goes
// through a single MSet so a concurrent reader can never observe part of a
// session: the four session keys are one logical transaction.
package store

import "context"

// KV is the minimal key/value contract the stores need. MSet must apply all
// pairs atomically. MGet returns only the keys that exist; absent keys are
// simply missing from the result, not an error.
type KV interface {
	MSet(ctx context.Context, pairs map[string]string) error
	MGet(ctx context.Context, keys ...string) (map[string]string, error)
	Del(ctx context.Context, keys ...string) error
}
