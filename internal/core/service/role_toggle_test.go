package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

type staticSession struct {
	user *domain.Identity
}

func (s *staticSession) User() *domain.Identity {
	if s.user == nil {
		return nil
	}
	clone := *s.user
	return &clone
}

func (s *staticSession) IsAuthenticated() bool { return s.user != nil }
func (s *staticSession) Loading() bool         { return false }

type fakePreferenceStore struct {
	mu     sync.Mutex
	facets map[string]domain.Facet
	err    error
}

func newFakePreferenceStore() *fakePreferenceStore {
	return &fakePreferenceStore{facets: make(map[string]domain.Facet)}
}

func (f *fakePreferenceStore) SaveFacet(_ context.Context, accountID string, facet domain.Facet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.facets[accountID] = facet
	return nil
}

func (f *fakePreferenceStore) LoadFacet(_ context.Context, accountID string) (domain.Facet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.facets[accountID], nil
}

func newTestToggle(user *domain.Identity) (*RoleToggle, *fakePreferenceStore) {
	prefs := newFakePreferenceStore()
	toggle := NewRoleToggle(&staticSession{user: user}, prefs, 0, zerolog.Nop())
	return toggle, prefs
}

func TestRoleToggle_PermissionMatrix(t *testing.T) {
	cases := []struct {
		base   domain.Role
		target domain.Facet
		want   bool
	}{
		{domain.RoleStartup, domain.FacetStartup, true},
		{domain.RoleStartup, domain.FacetRecruiter, true},
		{domain.RoleRecruiter, domain.FacetRecruiter, true},
		{domain.RoleRecruiter, domain.FacetStartup, false},
		{domain.RoleJobseeker, domain.FacetStartup, false},
		{domain.RoleJobseeker, domain.FacetRecruiter, false},
	}

	for _, tc := range cases {
		toggle, _ := newTestToggle(&domain.Identity{ID: "u1", Role: tc.base})
		if got := toggle.CanSwitchToRole(tc.target); got != tc.want {
			t.Fatalf("CanSwitchToRole(%s base, %s target) = %v, want %v", tc.base, tc.target, got, tc.want)
		}
	}
}

func TestRoleToggle_NoUser(t *testing.T) {
	toggle, _ := newTestToggle(nil)

	if toggle.CanSwitchToRole(domain.FacetRecruiter) {
		t.Fatalf("no account must not be switchable")
	}
	if err := toggle.SwitchToRole(context.Background(), domain.FacetRecruiter); !errors.Is(err, domain.ErrNoAccount) {
		t.Fatalf("expected ErrNoAccount, got %v", err)
	}
}

func TestRoleToggle_SwitchPersistsPerAccount(t *testing.T) {
	toggle, prefs := newTestToggle(&domain.Identity{ID: "acct-9", Role: domain.RoleStartup})

	if err := toggle.SwitchToRole(context.Background(), domain.FacetRecruiter); err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	if prefs.facets["acct-9"] != domain.FacetRecruiter {
		t.Fatalf("facet not persisted under account id: %+v", prefs.facets)
	}
	if got := toggle.ActiveFacet(context.Background()); got != domain.FacetRecruiter {
		t.Fatalf("in-memory facet not updated: %s", got)
	}
}

func TestRoleToggle_SwitchToCurrentFacetIsNoop(t *testing.T) {
	toggle, prefs := newTestToggle(&domain.Identity{ID: "acct-9", Role: domain.RoleStartup})

	// Default facet for a startup-base account is startup.
	if err := toggle.SwitchToRole(context.Background(), domain.FacetStartup); err != nil {
		t.Fatalf("no-op switch errored: %v", err)
	}
	if len(prefs.facets) != 0 {
		t.Fatalf("no-op switch must not write the store: %+v", prefs.facets)
	}
}

func TestRoleToggle_RecruiterCannotPresentStartup(t *testing.T) {
	toggle, prefs := newTestToggle(&domain.Identity{ID: "acct-2", Role: domain.RoleRecruiter})

	err := toggle.SwitchToRole(context.Background(), domain.FacetStartup)
	if !errors.Is(err, domain.ErrFacetNotAllowed) {
		t.Fatalf("expected ErrFacetNotAllowed, got %v", err)
	}
	if len(prefs.facets) != 0 {
		t.Fatalf("rejected switch must not persist: %+v", prefs.facets)
	}
}

func TestRoleToggle_ActiveFacetFallsBackToBase(t *testing.T) {
	toggle, _ := newTestToggle(&domain.Identity{ID: "acct-3", Role: domain.RoleRecruiter})

	if got := toggle.ActiveFacet(context.Background()); got != domain.FacetRecruiter {
		t.Fatalf("expected recruiter default facet, got %q", got)
	}
}

func TestRoleToggle_CachedFacetDoesNotOutliveAccount(t *testing.T) {
	session := &staticSession{user: &domain.Identity{ID: "acct-a", Role: domain.RoleStartup}}
	prefs := newFakePreferenceStore()
	toggle := NewRoleToggle(session, prefs, 0, zerolog.Nop())

	if err := toggle.SwitchToRole(context.Background(), domain.FacetRecruiter); err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	if got := toggle.ActiveFacet(context.Background()); got != domain.FacetRecruiter {
		t.Fatalf("owner should read its own selection, got %q", got)
	}

	// A different account signs in on the same toggle. Its facet must come
	// from its own preference, never from the previous owner's cache.
	session.user = &domain.Identity{ID: "acct-b", Role: domain.RoleJobseeker}
	if got := toggle.ActiveFacet(context.Background()); got != "" {
		t.Fatalf("facet-less account presented previous owner's facet: %q", got)
	}

	session.user = &domain.Identity{ID: "acct-c", Role: domain.RoleStartup}
	prefs.facets["acct-c"] = domain.FacetStartup
	if got := toggle.ActiveFacet(context.Background()); got != domain.FacetStartup {
		t.Fatalf("new account's own preference ignored, got %q", got)
	}

	session.user = nil
	if got := toggle.ActiveFacet(context.Background()); got != "" {
		t.Fatalf("signed-out toggle must present no facet, got %q", got)
	}
}

func TestRoleToggle_ActiveFacetReadsStoredPreference(t *testing.T) {
	toggle, prefs := newTestToggle(&domain.Identity{ID: "acct-4", Role: domain.RoleStartup})
	prefs.facets["acct-4"] = domain.FacetRecruiter

	if got := toggle.ActiveFacet(context.Background()); got != domain.FacetRecruiter {
		t.Fatalf("stored preference ignored, got %q", got)
	}
}
