package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerbridge/identity-system/internal/core/domain"
	"github.com/careerbridge/identity-system/internal/core/ports"
)

const defaultSwitchDuration = 600 * time.Millisecond

// RoleToggle lets a dual-capability account pick which permitted facet it
// presents, without re-authenticating. The selection is a preference persisted
// per account id, disjoint from the session store, and it never rewrites the
// underlying role claim.
type RoleToggle struct {
	session  ports.SessionReader
	prefs    ports.PreferenceStore
	log      zerolog.Logger
	minDelay time.Duration

	// The cached selection is valid only for the account that resolved it;
	// a session change invalidates it and forces a store re-read.
	mu       sync.RWMutex
	cacheFor string
	facet    domain.Facet
}

// NewRoleToggle builds a toggle over the given session view and preference
// store. minDelay is the minimum cosmetic duration of a switch; values below
// zero select the default. Tests pass 0 to disable the delay.
func NewRoleToggle(session ports.SessionReader, prefs ports.PreferenceStore, minDelay time.Duration, log zerolog.Logger) *RoleToggle {
	if minDelay < 0 {
		minDelay = defaultSwitchDuration
	}
	return &RoleToggle{session: session, prefs: prefs, log: log, minDelay: minDelay}
}

// CanSwitchToRole reports whether the current account may present the target
// facet. Startup-base accounts may present either facet; recruiter-base
// accounts only the recruiter facet; everyone else none.
func (t *RoleToggle) CanSwitchToRole(target domain.Facet) bool {
	user := t.session.User()
	if user == nil {
		return false
	}
	return domain.CanSwitchFacet(user.Role, target)
}

// ActiveFacet resolves the presented facet: the persisted selection when one
// exists, otherwise the base role's natural facet.
func (t *RoleToggle) ActiveFacet(ctx context.Context) domain.Facet {
	user := t.session.User()
	if user == nil {
		return ""
	}

	t.mu.RLock()
	if t.cacheFor == user.ID && t.facet != "" {
		defer t.mu.RUnlock()
		return t.facet
	}
	t.mu.RUnlock()

	stored, err := t.prefs.LoadFacet(ctx, user.ID)
	if err != nil {
		t.log.Warn().Err(err).Msg("facet preference load failed")
		return domain.DefaultFacet(user.Role)
	}
	if stored == "" {
		return domain.DefaultFacet(user.Role)
	}

	t.setCached(user.ID, stored)
	return stored
}

// SwitchToRole persists the target facet for the current account and updates
// the in-memory selection. Rejects when no account is resolvable or the facet
// is not permitted; switching to the already-active facet is a no-op. The
// transition holds for at least minDelay so the UI has visible feedback; it is
// neither retried nor cancellable once started.
func (t *RoleToggle) SwitchToRole(ctx context.Context, target domain.Facet) error {
	user := t.session.User()
	if user == nil {
		return domain.ErrNoAccount
	}
	if !domain.CanSwitchFacet(user.Role, target) {
		return domain.ErrFacetNotAllowed
	}
	if t.ActiveFacet(ctx) == target {
		return nil
	}

	started := time.Now()

	if err := t.prefs.SaveFacet(ctx, user.ID, target); err != nil {
		return err
	}

	t.setCached(user.ID, target)

	if remaining := t.minDelay - time.Since(started); remaining > 0 {
		time.Sleep(remaining)
	}

	t.log.Info().Str("account", user.ID).Str("facet", string(target)).Msg("facet switched")
	return nil
}

func (t *RoleToggle) setCached(accountID string, facet domain.Facet) {
	t.mu.Lock()
	t.cacheFor = accountID
	t.facet = facet
	t.mu.Unlock()
}
