package ports

import "github.com/careerbridge/identity-system/internal/core/domain"

// Navigator is the imperative navigation primitive: redirect the client to a
// path. Implementations must be cheap; the coordinator calls it on the hot
// path between persistence and loading reset.
type Navigator interface {
	Navigate(path string)
}

// Notifier is the fire-and-forget user notification sink.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// SessionReader is the minimal read-only view of the coordinator that sibling
// subsystems (facet toggle, guards) consume. They validate permission against
// the current user but never store themselves inside the session.
type SessionReader interface {
	User() *domain.Identity
	IsAuthenticated() bool
	Loading() bool
}
