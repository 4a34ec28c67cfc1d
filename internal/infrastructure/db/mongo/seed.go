package mongo

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/careerbridge/identity-system/internal/core/domain"
	"github.com/careerbridge/identity-system/internal/core/ports"
	"github.com/careerbridge/identity-system/internal/core/service"
)

// SeedDemoAccounts guarantees every role in the demo-credential table resolves
// to a real account, so demo logins go through the exact production
// verification path. Existing accounts are left untouched.
func SeedDemoAccounts(ctx context.Context, repo *CredentialRepository) error {
	for role, creds := range service.DemoCredentialTable() {
		_, err := repo.FindByEmail(ctx, creds.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("seed demo accounts: %w", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed demo accounts: hash: %w", err)
		}

		if _, err := repo.Create(ctx, &ports.CredentialRecord{
			Email:        creds.Email,
			FullName:     "Demo " + string(role),
			Role:         role,
			PasswordHash: string(hash),
		}); err != nil && !errors.Is(err, domain.ErrUserExists) {
			return fmt.Errorf("seed demo accounts: create %s: %w", role, err)
		}
	}
	return nil
}
