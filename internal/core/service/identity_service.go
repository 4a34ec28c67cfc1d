package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/careerbridge/identity-system/internal/core/domain"
	"github.com/careerbridge/identity-system/internal/core/ports"
)

// demoCredentials is the closed table of seeded per-role demo accounts.
// DemoLogin resolves the pair here and then walks the normal Login path, so
// demo accounts can never diverge from production verification behaviour.
var demoCredentials = map[domain.Role]ports.Credentials{
	domain.RoleJobseeker:  {Email: "demo.jobseeker@careerbridge.dev", Password: "demo1234"},
	domain.RoleRecruiter:  {Email: "demo.recruiter@careerbridge.dev", Password: "demo1234"},
	domain.RoleFreelancer: {Email: "demo.freelancer@careerbridge.dev", Password: "demo1234"},
	domain.RoleClient:     {Email: "demo.client@careerbridge.dev", Password: "demo1234"},
	domain.RoleCollege:    {Email: "demo.college@careerbridge.dev", Password: "demo1234"},
	domain.RoleStudent:    {Email: "demo.student@careerbridge.dev", Password: "demo1234"},
	domain.RoleStartup:    {Email: "demo.startup@careerbridge.dev", Password: "demo1234"},
	domain.RoleAdmin:      {Email: "demo.admin@careerbridge.dev", Password: "demo1234"},
}

// DemoCredentialTable returns a copy of the seeded demo table. Used by the
// startup seeder to guarantee every demo role resolves to a real account.
func DemoCredentialTable() map[domain.Role]ports.Credentials {
	table := make(map[domain.Role]ports.Credentials, len(demoCredentials))
	for role, creds := range demoCredentials {
		table[role] = creds
	}
	return table
}

// IdentityService implements login, signup and demo login over a credential
// repository. Stateless: session ownership lives in the SessionCoordinator.
type IdentityService struct {
	repo      ports.CredentialRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewIdentityService(repo ports.CredentialRepository, jwtSecret string, tokenTTL time.Duration) *IdentityService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &IdentityService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *IdentityService) Login(ctx context.Context, email, password string) ports.AuthResult {
	if email == "" || password == "" {
		return failure(domain.ErrInvalidCredentials)
	}

	record, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return failure(classify(err))
	}

	if bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)) != nil {
		return failure(domain.ErrInvalidCredentials)
	}

	identity, err := s.identityFor(record)
	if err != nil {
		return failure(err)
	}
	return ports.AuthResult{Success: true, User: identity}
}

func (s *IdentityService) Signup(ctx context.Context, email, password, fullName string, role domain.Role) ports.AuthResult {
	if email == "" || password == "" || !role.Valid() {
		return failure(domain.ErrInvalidCredentials)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return failure(err)
	}

	created, err := s.repo.Create(ctx, &ports.CredentialRecord{
		Email:        email,
		FullName:     fullName,
		Role:         role,
		PasswordHash: string(hash),
	})
	if err != nil {
		return failure(classify(err))
	}

	identity, err := s.identityFor(created)
	if err != nil {
		return failure(err)
	}
	return ports.AuthResult{Success: true, User: identity}
}

// DemoLogin resolves the seeded credentials for a role and funnels them
// through Login. The resolved account must carry the requested role; a
// mismatch is a credential error, not a transport one.
func (s *IdentityService) DemoLogin(ctx context.Context, role domain.Role) ports.AuthResult {
	creds, ok := s.DemoCredentials(role)
	if !ok {
		return failure(domain.ErrDemoRoleUnknown)
	}

	result := s.Login(ctx, creds.Email, creds.Password)
	if result.Success && result.User.Role != role {
		return failure(domain.ErrInvalidCredentials)
	}
	return result
}

func (s *IdentityService) DashboardRoute(role domain.Role) string {
	return domain.DashboardRoute(role)
}

// DashboardRouteFor resolves the login landing path for a concrete identity:
// recruiters with a dashboard id land on their per-dashboard path, everyone
// else follows the generic role table.
func (s *IdentityService) DashboardRouteFor(identity *domain.Identity) string {
	if identity == nil {
		return domain.HomeRoute
	}
	if identity.Role == domain.RoleRecruiter && identity.DashboardID != "" {
		return domain.DashboardRoute(domain.RoleRecruiter) + "/" + identity.DashboardID
	}
	return domain.DashboardRoute(identity.Role)
}

func (s *IdentityService) DemoCredentials(role domain.Role) (ports.Credentials, bool) {
	creds, ok := demoCredentials[role]
	return creds, ok
}

func (s *IdentityService) identityFor(record *ports.CredentialRecord) (*domain.Identity, error) {
	token, err := s.generateToken(record)
	if err != nil {
		return nil, err
	}

	identity := &domain.Identity{
		ID:              record.ID,
		Email:           record.Email,
		FullName:        record.FullName,
		Role:            record.Role,
		Token:           token,
		ProfileComplete: record.ProfileComplete,
		CreatedAt:       time.Now().UTC(),
	}
	if record.Role == domain.RoleRecruiter {
		identity.DashboardID = record.DashboardID
	}
	return identity, nil
}

func (s *IdentityService) generateToken(record *ports.CredentialRecord) (string, error) {
	claims := jwt.MapClaims{
		"sub":   record.ID,
		"email": record.Email,
		"role":  string(record.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	if record.Role == domain.RoleRecruiter && record.DashboardID != "" {
		claims["dashboard_id"] = record.DashboardID
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func failure(err error) ports.AuthResult {
	return ports.AuthResult{Err: err}
}

// classify funnels repository errors into the two user-facing classes:
// credential problems pass through, everything else is a transport failure.
func classify(err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrInvalidCredentials):
		return err
	default:
		return errors.Join(domain.ErrTransport, err)
	}
}
