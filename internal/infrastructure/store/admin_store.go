package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

// adminKey is disjoint from every session-namespace key. Clearing the admin
// session never touches the general session, and vice versa.
const adminKey = "admin:identity"

// AdminStore persists the privileged session under its own single key.
type AdminStore struct {
	kv KV
}

func NewAdminStore(kv KV) *AdminStore {
	return &AdminStore{kv: kv}
}

func (a *AdminStore) Save(ctx context.Context, admin *domain.AdminIdentity) error {
	if admin == nil {
		return fmt.Errorf("admin store: cannot save nil identity")
	}
	blob, err := json.Marshal(admin)
	if err != nil {
		return fmt.Errorf("admin store: marshal: %w", err)
	}
	return a.kv.MSet(ctx, map[string]string{adminKey: string(blob)})
}

func (a *AdminStore) Load(ctx context.Context) (*domain.AdminIdentity, error) {
	found, err := a.kv.MGet(ctx, adminKey)
	if err != nil {
		return nil, fmt.Errorf("admin store: load: %w", err)
	}

	blob, ok := found[adminKey]
	if !ok || blob == "" {
		return nil, nil
	}

	var admin domain.AdminIdentity
	if err := json.Unmarshal([]byte(blob), &admin); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSession, err)
	}
	return &admin, nil
}

func (a *AdminStore) Clear(ctx context.Context) error {
	return a.kv.Del(ctx, adminKey)
}
