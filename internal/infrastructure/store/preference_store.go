package store

import (
	"context"
	"fmt"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

// PreferenceStore persists the active-role facet keyed per account id. It is
// deliberately not part of the session namespace: the selection is a
// preference that outlives individual logins.
type PreferenceStore struct {
	kv KV
}

func NewPreferenceStore(kv KV) *PreferenceStore {
	return &PreferenceStore{kv: kv}
}

func (p *PreferenceStore) key(accountID string) string {
	return fmt.Sprintf("pref:active_role:%s", accountID)
}

func (p *PreferenceStore) SaveFacet(ctx context.Context, accountID string, facet domain.Facet) error {
	if accountID == "" {
		return fmt.Errorf("preference store: empty account id")
	}
	return p.kv.MSet(ctx, map[string]string{p.key(accountID): string(facet)})
}

// LoadFacet returns the stored facet for an account, or the empty facet when
// no selection has been made.
func (p *PreferenceStore) LoadFacet(ctx context.Context, accountID string) (domain.Facet, error) {
	found, err := p.kv.MGet(ctx, p.key(accountID))
	if err != nil {
		return "", fmt.Errorf("preference store: load: %w", err)
	}
	return domain.Facet(found[p.key(accountID)]), nil
}
