package ports

import (
	"context"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

// Credentials is one email/password pair from the seeded demo table.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the uniform envelope for every authentication attempt.
// Backend failures are classified into domain errors here; they never cross
// this boundary as raw transport errors.
type AuthResult struct {
	Success bool
	User    *domain.Identity
	Err     error
}

type IdentityService interface {
	Login(ctx context.Context, email, password string) AuthResult
	Signup(ctx context.Context, email, password, fullName string, role domain.Role) AuthResult
	DemoLogin(ctx context.Context, role domain.Role) AuthResult
	DashboardRoute(role domain.Role) string
	DashboardRouteFor(identity *domain.Identity) string
	DemoCredentials(role domain.Role) (Credentials, bool)
}
