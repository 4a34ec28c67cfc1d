package ports

import (
	"context"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

// SessionStore persists the one general session. Save is all-or-nothing: a
// concurrent reader observes either the whole session or none of it. Load
// treats partial state as absent and returns domain.ErrCorruptSession only
// when a stored record is present but unparsable. Clear is idempotent.
type SessionStore interface {
	Save(ctx context.Context, identity *domain.Identity) error
	Load(ctx context.Context) (*domain.Identity, error)
	Clear(ctx context.Context) error
}

// PreferenceStore persists the active-role facet per account, independently of
// the session: the preference survives logout.
type PreferenceStore interface {
	SaveFacet(ctx context.Context, accountID string, facet domain.Facet) error
	LoadFacet(ctx context.Context, accountID string) (domain.Facet, error)
}

// AdminSessionStore persists the privileged session under a namespace disjoint
// from SessionStore. Clearing one must never touch the other.
type AdminSessionStore interface {
	Save(ctx context.Context, admin *domain.AdminIdentity) error
	Load(ctx context.Context) (*domain.AdminIdentity, error)
	Clear(ctx context.Context) error
}
