package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

type stubSession struct {
	user    *domain.Identity
	loading bool
}

func (s *stubSession) User() *domain.Identity { return s.user }
func (s *stubSession) IsAuthenticated() bool  { return s.user != nil }
func (s *stubSession) Loading() bool          { return s.loading }

func runGuard(t *testing.T, session *stubSession, loginRoute string, required ...domain.Role) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Guard(session, loginRoute, required...)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestGuard_WaitsWhilePending(t *testing.T) {
	// Loading means "decision deferred", never "unauthenticated": no
	// redirect may fire, whatever the auth state.
	for _, user := range []*domain.Identity{nil, {ID: "u1", Role: domain.RoleClient}} {
		rec, called := runGuard(t, &stubSession{user: user, loading: true}, "")
		if called {
			t.Fatalf("handler ran while loading")
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("placeholder should be 200, got %d", rec.Code)
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "" {
			t.Fatalf("guard redirected while loading (to %s)", loc)
		}
	}
}

func TestGuard_RedirectsUnauthenticatedToLogin(t *testing.T) {
	rec, called := runGuard(t, &stubSession{}, "")
	if called {
		t.Fatalf("handler ran for unauthenticated request")
	}
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/login" {
		t.Fatalf("expected 302 to /login, got %d %s", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}

func TestGuard_RoleSpecificLoginRoute(t *testing.T) {
	rec, _ := runGuard(t, &stubSession{}, "/recruiter/login", domain.RoleRecruiter)
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/recruiter/login" {
		t.Fatalf("expected role-specific login route, got %s", loc)
	}
}

func TestGuard_WrongRoleGoesHomeNotLogin(t *testing.T) {
	session := &stubSession{user: &domain.Identity{ID: "u1", Role: domain.RoleStudent}}
	rec, called := runGuard(t, session, "", domain.RoleRecruiter)
	if called {
		t.Fatalf("handler ran for wrong role")
	}
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/" {
		t.Fatalf("wrong role must bounce to /, got %d %s", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}

func TestGuard_AllowsMatchingRole(t *testing.T) {
	session := &stubSession{user: &domain.Identity{ID: "u1", Role: domain.RoleRecruiter}}
	rec, called := runGuard(t, session, "", domain.RoleRecruiter, domain.RoleStartup)
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("matching role should pass: called=%v code=%d", called, rec.Code)
	}
}

func TestGuard_NoRequiredRolesNeedsOnlyAuth(t *testing.T) {
	session := &stubSession{user: &domain.Identity{ID: "u1", Role: domain.RoleCollege}}
	_, called := runGuard(t, session, "")
	if !called {
		t.Fatalf("authenticated request with no role requirement should pass")
	}
}

func TestDecideGuard_ReevaluatesOnStateChange(t *testing.T) {
	// Same inputs except loading: first deferred, then decided.
	pending := DecideGuard(GuardState{Loading: true}, "")
	if pending.Action != GuardWait {
		t.Fatalf("expected wait while loading")
	}
	settled := DecideGuard(GuardState{Loading: false}, "")
	if settled.Action != GuardRedirect || settled.Target != "/login" {
		t.Fatalf("expected redirect after loading settles, got %+v", settled)
	}
}

type stubAdminChecker struct {
	admin *domain.AdminIdentity
}

func (s *stubAdminChecker) Current(context.Context) *domain.AdminIdentity { return s.admin }

func TestAdminGuard_AcceptsOnlyAdminSession(t *testing.T) {
	e := echo.New()

	run := func(checker *stubAdminChecker) (*httptest.ResponseRecorder, bool) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		called := false
		handler := AdminGuard(checker, "")(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		return rec, called
	}

	rec, called := run(&stubAdminChecker{})
	if called {
		t.Fatalf("admin route ran without admin session")
	}
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/admin/login" {
		t.Fatalf("expected 302 to /admin/login, got %d %s", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}

	rec, called = run(&stubAdminChecker{admin: &domain.AdminIdentity{ID: "a1", Username: "root", Role: domain.RoleAdmin}})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("valid admin session rejected: called=%v code=%d", called, rec.Code)
	}
}
