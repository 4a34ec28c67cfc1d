package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/careerbridge/identity-system/internal/core/domain"
	"github.com/careerbridge/identity-system/internal/core/ports"
)

// SessionCoordinator is the single owner of the general session state. Every
// way of becoming signed in (credentials, signup, seeded demo accounts) funnels
// through it, and it alone writes the session store. Sibling subsystems read
// state through the ports.SessionReader view.
//
// Ordering guarantee on every successful transition: persistence completes
// before navigation, and navigation completes before loading flips back to
// false. A screen mounted by the navigation therefore observes an
// already-persisted session on its first read.
//
// Actions are serialised behind actionMu. There is deliberately no
// single-flight guard against duplicate concurrent submissions: a double
// submit issues two backend calls, same as the original behaviour.
type SessionCoordinator struct {
	identity ports.IdentityService
	store    ports.SessionStore
	nav      ports.Navigator
	notify   ports.Notifier
	log      zerolog.Logger

	actionMu sync.Mutex

	mu      sync.RWMutex
	user    *domain.Identity
	loading bool
}

func NewSessionCoordinator(
	identity ports.IdentityService,
	store ports.SessionStore,
	nav ports.Navigator,
	notify ports.Notifier,
	log zerolog.Logger,
) *SessionCoordinator {
	// loading starts true so consumers mounted before Rehydrate never
	// mistake "not yet rehydrated" for "signed out".
	return &SessionCoordinator{
		identity: identity,
		store:    store,
		nav:      nav,
		notify:   notify,
		log:      log,
		loading:  true,
	}
}

// Rehydrate restores the session from the store at startup. Corrupt or partial
// state is cleared defensively and treated as signed-out, with no user-visible
// error. Both branches end with exactly one transition of loading to false.
func (c *SessionCoordinator) Rehydrate(ctx context.Context) {
	c.actionMu.Lock()
	defer c.actionMu.Unlock()
	defer c.setLoading(false)

	identity, err := c.store.Load(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("stored session unusable, clearing")
		if clearErr := c.store.Clear(ctx); clearErr != nil {
			c.log.Error().Err(clearErr).Msg("defensive session clear failed")
		}
		return
	}
	c.setUser(identity)
}

// Login authenticates with production credentials. Returns the landing route
// handed to the navigator on success.
func (c *SessionCoordinator) Login(ctx context.Context, email, password string) (route string, err error) {
	c.actionMu.Lock()
	defer c.actionMu.Unlock()
	defer c.recoverAction("login", &err)
	c.setLoading(true)
	defer c.setLoading(false)

	result := c.identity.Login(ctx, email, password)
	if !result.Success {
		c.notifyFailure(result.Err)
		return "", result.Err
	}
	return c.establishSession(ctx, result.User, c.identity.DashboardRouteFor(result.User), "Signed in")
}

// Signup registers a new account and signs it in.
func (c *SessionCoordinator) Signup(ctx context.Context, email, password, fullName string, role domain.Role) (route string, err error) {
	c.actionMu.Lock()
	defer c.actionMu.Unlock()
	defer c.recoverAction("signup", &err)
	c.setLoading(true)
	defer c.setLoading(false)

	result := c.identity.Signup(ctx, email, password, fullName, role)
	if !result.Success {
		c.notifyFailure(result.Err)
		return "", result.Err
	}
	return c.establishSession(ctx, result.User, c.identity.DashboardRouteFor(result.User), "Account created")
}

// DemoLogin signs in with the seeded account for a role.
func (c *SessionCoordinator) DemoLogin(ctx context.Context, role domain.Role) (route string, err error) {
	c.actionMu.Lock()
	defer c.actionMu.Unlock()
	defer c.recoverAction("demo login", &err)
	c.setLoading(true)
	defer c.setLoading(false)

	result := c.identity.DemoLogin(ctx, role)
	if !result.Success {
		c.notifyFailure(result.Err)
		return "", result.Err
	}
	return c.establishSession(ctx, result.User, c.identity.DashboardRouteFor(result.User), "Signed in to demo account")
}

// Logout clears the store, drops the user and navigates home. Safe to call
// with no active user: the clear is idempotent and nothing else happens.
func (c *SessionCoordinator) Logout(ctx context.Context) error {
	c.actionMu.Lock()
	defer c.actionMu.Unlock()

	if err := c.store.Clear(ctx); err != nil {
		c.log.Warn().Err(err).Msg("session clear failed during logout")
	}
	c.setUser(nil)
	c.nav.Navigate(domain.HomeRoute)
	return nil
}

// UpdateProfile merges a partial update into the current identity, persists
// the merged result and swaps the in-memory state in one step. Calling it with
// no active session is a precondition violation: it fails synchronously and
// writes nothing.
func (c *SessionCoordinator) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	c.actionMu.Lock()
	defer c.actionMu.Unlock()

	current := c.User()
	if current == nil {
		return domain.ErrNoActiveSession
	}

	merged := update.Apply(*current)
	if err := c.store.Save(ctx, &merged); err != nil {
		c.notifyFailure(errors.Join(domain.ErrTransport, err))
		return err
	}
	c.setUser(&merged)
	return nil
}

// User returns a copy of the current identity, or nil when signed out.
func (c *SessionCoordinator) User() *domain.Identity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	clone := *c.user
	return &clone
}

func (c *SessionCoordinator) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil
}

func (c *SessionCoordinator) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *SessionCoordinator) HasRole(role domain.Role) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil && c.user.Role == role
}

// DashboardRoute and DemoCredentials are exposed so the rest of the
// application reads routing and demo data through this contract instead of
// reaching into the identity service or the store.
func (c *SessionCoordinator) DashboardRoute(role domain.Role) string {
	return c.identity.DashboardRoute(role)
}

func (c *SessionCoordinator) DemoCredentials(role domain.Role) (ports.Credentials, bool) {
	return c.identity.DemoCredentials(role)
}

// establishSession runs the success tail of every sign-in: persist, swap
// state, navigate, notify. Persistence failure aborts the transition with the
// user unchanged.
func (c *SessionCoordinator) establishSession(ctx context.Context, identity *domain.Identity, route, message string) (string, error) {
	if err := c.store.Save(ctx, identity); err != nil {
		c.log.Error().Err(err).Msg("session persist failed")
		c.notifyFailure(errors.Join(domain.ErrTransport, err))
		return "", err
	}
	c.setUser(identity)
	c.nav.Navigate(route)
	c.notify.Success(message)
	return route, nil
}

func (c *SessionCoordinator) setUser(identity *domain.Identity) {
	c.mu.Lock()
	c.user = identity
	c.mu.Unlock()
}

func (c *SessionCoordinator) setLoading(loading bool) {
	c.mu.Lock()
	c.loading = loading
	c.mu.Unlock()
}

func (c *SessionCoordinator) notifyFailure(err error) {
	switch {
	case errors.Is(err, domain.ErrTransport):
		c.notify.Error("Cannot reach the server. Please try again.")
	case errors.Is(err, domain.ErrUserExists):
		c.notify.Error("An account with this email already exists.")
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrDemoRoleUnknown):
		c.notify.Error("Invalid credentials.")
	default:
		c.notify.Error("Something went wrong. Please try again.")
	}
}

// recoverAction converts an unexpected panic inside an action into a generic
// notification and a clean error, preserving the never-stuck-loading
// guarantee (the deferred setLoading(false) still runs).
func (c *SessionCoordinator) recoverAction(action string, err *error) {
	if r := recover(); r != nil {
		c.log.Error().Interface("panic", r).Str("action", action).Msg("session action panicked")
		c.notify.Error("Something went wrong. Please try again.")
		*err = fmt.Errorf("%s: internal error", action)
	}
}
