package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/careerbridge/identity-system/internal/core/domain"
	"github.com/careerbridge/identity-system/internal/core/ports"
)

type stubCredentialRepo struct {
	byEmail map[string]*ports.CredentialRecord
	findErr error
}

func newStubCredentialRepo() *stubCredentialRepo {
	return &stubCredentialRepo{byEmail: make(map[string]*ports.CredentialRecord)}
}

func (r *stubCredentialRepo) FindByEmail(_ context.Context, email string) (*ports.CredentialRecord, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	record, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *record
	return &clone, nil
}

func (r *stubCredentialRepo) Create(_ context.Context, record *ports.CredentialRecord) (*ports.CredentialRecord, error) {
	if _, exists := r.byEmail[record.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *record
	if clone.ID == "" {
		clone.ID = "id-" + record.Email
	}
	r.byEmail[record.Email] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubCredentialRepo) seed(t *testing.T, email, password string, role domain.Role, dashboardID string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	r.byEmail[email] = &ports.CredentialRecord{
		ID:           "id-" + email,
		Email:        email,
		Role:         role,
		DashboardID:  dashboardID,
		PasswordHash: string(hash),
	}
}

func (r *stubCredentialRepo) seedDemoTable(t *testing.T) {
	t.Helper()
	for role, creds := range DemoCredentialTable() {
		r.seed(t, creds.Email, creds.Password, role, "")
	}
}

func TestIdentityService_Login_Success(t *testing.T) {
	repo := newStubCredentialRepo()
	repo.seed(t, "maya@example.com", "s3cret", domain.RoleJobseeker, "")
	svc := NewIdentityService(repo, "secret", time.Hour)

	result := svc.Login(context.Background(), "maya@example.com", "s3cret")
	if !result.Success {
		t.Fatalf("login failed: %v", result.Err)
	}
	if result.User == nil || result.User.Role != domain.RoleJobseeker {
		t.Fatalf("unexpected user: %+v", result.User)
	}
	if result.User.Token == "" {
		t.Fatalf("expected token on login")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.User.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != string(domain.RoleJobseeker) {
		t.Fatalf("expected jobseeker claim, got %v", claims["role"])
	}
}

func TestIdentityService_Login_InvalidPassword(t *testing.T) {
	repo := newStubCredentialRepo()
	repo.seed(t, "maya@example.com", "goodpass", domain.RoleJobseeker, "")
	svc := NewIdentityService(repo, "secret", time.Hour)

	result := svc.Login(context.Background(), "maya@example.com", "badpass")
	if result.Success {
		t.Fatalf("expected failure")
	}
	if !errors.Is(result.Err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", result.Err)
	}
}

func TestIdentityService_Login_UserNotFound(t *testing.T) {
	svc := NewIdentityService(newStubCredentialRepo(), "secret", time.Hour)

	result := svc.Login(context.Background(), "ghost@example.com", "pass")
	if result.Success || !errors.Is(result.Err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", result.Err)
	}
}

func TestIdentityService_Login_TransportFailureClassified(t *testing.T) {
	repo := newStubCredentialRepo()
	repo.findErr = errors.New("connection refused")
	svc := NewIdentityService(repo, "secret", time.Hour)

	result := svc.Login(context.Background(), "maya@example.com", "pass")
	if result.Success {
		t.Fatalf("expected failure")
	}
	if !errors.Is(result.Err, domain.ErrTransport) {
		t.Fatalf("raw backend error escaped the boundary: %v", result.Err)
	}
}

func TestIdentityService_Signup_Success(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewIdentityService(repo, "secret", time.Hour)

	result := svc.Signup(context.Background(), "new@example.com", "pass123", "New User", domain.RoleFreelancer)
	if !result.Success {
		t.Fatalf("signup failed: %v", result.Err)
	}
	if result.User.Role != domain.RoleFreelancer || result.User.Token == "" {
		t.Fatalf("unexpected identity: %+v", result.User)
	}

	stored := repo.byEmail["new@example.com"]
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestIdentityService_Signup_Validation(t *testing.T) {
	svc := NewIdentityService(newStubCredentialRepo(), "secret", time.Hour)

	if result := svc.Signup(context.Background(), "", "pass", "x", domain.RoleClient); !errors.Is(result.Err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", result.Err)
	}
	if result := svc.Signup(context.Background(), "a@b.c", "pass", "x", domain.Role("wizard")); !errors.Is(result.Err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown role, got %v", result.Err)
	}
}

func TestIdentityService_Signup_Duplicate(t *testing.T) {
	repo := newStubCredentialRepo()
	svc := NewIdentityService(repo, "secret", time.Hour)

	_ = svc.Signup(context.Background(), "dup@example.com", "pass", "Dup", domain.RoleClient)
	result := svc.Signup(context.Background(), "dup@example.com", "pass2", "Dup", domain.RoleClient)
	if !errors.Is(result.Err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", result.Err)
	}
}

func TestIdentityService_DemoLogin_CoversEveryRole(t *testing.T) {
	repo := newStubCredentialRepo()
	repo.seedDemoTable(t)
	svc := NewIdentityService(repo, "secret", time.Hour)

	for role := range DemoCredentialTable() {
		result := svc.DemoLogin(context.Background(), role)
		if !result.Success {
			t.Fatalf("demo login failed for %s: %v", role, result.Err)
		}
		if result.User.Role != role {
			t.Fatalf("demo login for %s yielded role %s", role, result.User.Role)
		}
	}
}

func TestIdentityService_DemoLogin_UnknownRole(t *testing.T) {
	svc := NewIdentityService(newStubCredentialRepo(), "secret", time.Hour)

	result := svc.DemoLogin(context.Background(), domain.Role("wizard"))
	if !errors.Is(result.Err, domain.ErrDemoRoleUnknown) {
		t.Fatalf("expected ErrDemoRoleUnknown, got %v", result.Err)
	}
}

func TestIdentityService_DemoLogin_RoleMismatch(t *testing.T) {
	repo := newStubCredentialRepo()
	creds, _ := NewIdentityService(repo, "secret", time.Hour).DemoCredentials(domain.RoleStudent)
	// Seed the student demo email with a different role: drifted seed data.
	repo.seed(t, creds.Email, creds.Password, domain.RoleClient, "")
	svc := NewIdentityService(repo, "secret", time.Hour)

	result := svc.DemoLogin(context.Background(), domain.RoleStudent)
	if result.Success || !errors.Is(result.Err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected credential error on role mismatch, got %v", result.Err)
	}
}

func TestDashboardRoute_Totality(t *testing.T) {
	svc := NewIdentityService(newStubCredentialRepo(), "secret", time.Hour)

	want := map[domain.Role]string{
		domain.RoleJobseeker:  "/jobseeker/dashboard",
		domain.RoleRecruiter:  "/recruiter/dashboard",
		domain.RoleFreelancer: "/freelancer/dashboard",
		domain.RoleClient:     "/client/dashboard",
		domain.RoleCollege:    "/college/dashboard",
		domain.RoleStudent:    "/student/dashboard",
		domain.RoleStartup:    "/startup/dashboard",
		domain.RoleAdmin:      "/admin/dashboard",
	}

	for _, role := range domain.AllRoles {
		path := svc.DashboardRoute(role)
		if path == "" {
			t.Fatalf("empty dashboard route for %s", role)
		}
		if path != want[role] {
			t.Fatalf("route for %s: got %s want %s", role, path, want[role])
		}
	}

	if got := svc.DashboardRoute(domain.Role("wizard")); got != "/" {
		t.Fatalf("unknown role should fall back to /, got %s", got)
	}
}

func TestDashboardRouteFor_RecruiterDashboardID(t *testing.T) {
	svc := NewIdentityService(newStubCredentialRepo(), "secret", time.Hour)

	plain := &domain.Identity{Role: domain.RoleRecruiter}
	if got := svc.DashboardRouteFor(plain); got != "/recruiter/dashboard" {
		t.Fatalf("recruiter without dashboard id: got %s", got)
	}

	withID := &domain.Identity{Role: domain.RoleRecruiter, DashboardID: "d42"}
	if got := svc.DashboardRouteFor(withID); got != "/recruiter/dashboard/d42" {
		t.Fatalf("recruiter with dashboard id: got %s", got)
	}

	if got := svc.DashboardRouteFor(nil); got != "/" {
		t.Fatalf("nil identity: got %s", got)
	}
}

// Both behaviours coexist for a recruiter identity: the dashboard table says
// /recruiter/dashboard, while post-login dispatch always lands on the HRMS
// surface.
func TestLandingRoute_RecruiterPrecedence(t *testing.T) {
	svc := NewIdentityService(newStubCredentialRepo(), "secret", time.Hour)

	recruiter := &domain.Identity{Role: domain.RoleRecruiter}
	if got := svc.DashboardRoute(domain.RoleRecruiter); got != "/recruiter/dashboard" {
		t.Fatalf("dashboard route changed: %s", got)
	}
	if got := domain.LandingRoute(recruiter); got != "/recruiter/hrms" {
		t.Fatalf("landing dispatch for recruiter: got %s", got)
	}

	student := &domain.Identity{Role: domain.RoleStudent}
	if got := domain.LandingRoute(student); got != "/student/dashboard" {
		t.Fatalf("landing dispatch for student: got %s", got)
	}
	if got := domain.LandingRoute(nil); got != "/" {
		t.Fatalf("landing dispatch for nil identity: got %s", got)
	}
}
