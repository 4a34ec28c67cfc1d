package ports

import (
	"context"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

// AdminRecord is a stored privileged account, hash included.
type AdminRecord struct {
	ID           string
	Username     string
	PasswordHash string
}

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*AdminRecord, error)
}

// AuditRecorder accepts audit entries best-effort: Record must never block the
// session transition that produced the entry, and its failure is logged, not
// propagated.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

type AuditRepository interface {
	Insert(ctx context.Context, entry domain.AuditEntry) error
}
