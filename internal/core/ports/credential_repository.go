package ports

import (
	"context"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

// CredentialRecord is a stored account as the verification backend sees it:
// the identity fields plus the password hash that never leaves the repository
// layer.
type CredentialRecord struct {
	ID              string
	Email           string
	FullName        string
	Role            domain.Role
	DashboardID     string
	ProfileComplete bool
	PasswordHash    string
}

type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*CredentialRecord, error)
	Create(ctx context.Context, record *CredentialRecord) (*CredentialRecord, error)
}
