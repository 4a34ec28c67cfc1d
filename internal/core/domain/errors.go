package domain

import "errors"

var (
	// ErrInvalidCredentials covers bad email/password pairs and demo logins
	// whose resolved account does not carry the requested role.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrDemoRoleUnknown    = errors.New("no demo account seeded for role")

	// ErrTransport wraps backend/network failures. Callers surface a
	// notification and leave the session untouched.
	ErrTransport = errors.New("backend unreachable")

	// ErrCorruptSession marks persisted session state that is present but
	// unparsable. It is cleared defensively, never shown to the user.
	ErrCorruptSession = errors.New("corrupt session state")

	// ErrNoActiveSession is a precondition violation: a session-mutating call
	// arrived with no signed-in user. Programming error, not a user condition.
	ErrNoActiveSession = errors.New("no active session")

	ErrFacetNotAllowed = errors.New("facet not permitted for account role")
	ErrNoAccount       = errors.New("no account resolvable for facet switch")
	ErrForbidden       = errors.New("access forbidden")
)
