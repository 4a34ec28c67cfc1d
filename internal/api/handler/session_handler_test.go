package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/careerbridge/identity-system/internal/api"
	"github.com/careerbridge/identity-system/internal/api/handler"
	"github.com/careerbridge/identity-system/internal/core/domain"
)

func newSessionServer(stub *stubSession, accountID string) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	sh := handler.NewSessionHandler(stub)
	ph := handler.NewProfileHandler(stub)

	e.GET("/v1/session", sh.Current)
	e.GET("/v1/session/landing", sh.Landing)

	// stand-in for the JWT middleware: inject the claims it would set
	claims := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if accountID != "" {
				c.Set("account_id", accountID)
				c.Set("role", string(domain.RoleStudent))
			}
			return next(c)
		}
	}
	e.PATCH("/v1/profile", ph.Update, claims)
	return e
}

func TestSessionHandler_Current(t *testing.T) {
	stub := &stubSession{
		user:    &domain.Identity{ID: "u1", Email: "alice@example.com", Role: domain.RoleStudent},
		loading: false,
	}
	e := newSessionServer(stub, "")

	rec := doJSON(e, http.MethodGet, "/v1/session", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["authenticated"] != true || resp["loading"] != false {
		t.Fatalf("unexpected snapshot: %+v", resp)
	}
}

func TestSessionHandler_Landing_RecruiterGoesToHRMS(t *testing.T) {
	stub := &stubSession{
		user: &domain.Identity{ID: "r1", Email: "hr@corp.example", Role: domain.RoleRecruiter},
	}
	e := newSessionServer(stub, "")

	rec := doJSON(e, http.MethodGet, "/v1/session/landing", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/recruiter/hrms" {
		t.Fatalf("expected /recruiter/hrms, got %s", loc)
	}
}

func TestSessionHandler_Landing_OtherRolesFollowTable(t *testing.T) {
	stub := &stubSession{
		user: &domain.Identity{ID: "c1", Email: "dean@uni.example", Role: domain.RoleCollege},
	}
	e := newSessionServer(stub, "")

	rec := doJSON(e, http.MethodGet, "/v1/session/landing", "")
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/college/dashboard" {
		t.Fatalf("expected /college/dashboard, got %s", loc)
	}
}

func TestProfileHandler_Update_NoSession(t *testing.T) {
	stub := &stubSession{
		updateFn: func(update domain.ProfileUpdate) error {
			return domain.ErrNoActiveSession
		},
	}
	e := newSessionServer(stub, "u1")

	rec := doJSON(e, http.MethodPatch, "/v1/profile", `{"phone":"555-0100"}`)
	if rec.Code != http.StatusPreconditionFailed {
		t.Fatalf("expected 412, got %d", rec.Code)
	}
}

func TestProfileHandler_Update_MissingClaims(t *testing.T) {
	e := newSessionServer(&stubSession{}, "")

	rec := doJSON(e, http.MethodPatch, "/v1/profile", `{"phone":"555-0100"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestProfileHandler_Update_TokenSessionMismatch(t *testing.T) {
	stub := &stubSession{
		user: &domain.Identity{ID: "someone-else", Email: "x@example.com", Role: domain.RoleStudent},
	}
	e := newSessionServer(stub, "u1")

	rec := doJSON(e, http.MethodPatch, "/v1/profile", `{"phone":"555-0100"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestProfileHandler_Update_Success(t *testing.T) {
	var got domain.ProfileUpdate
	stub := &stubSession{
		user: &domain.Identity{ID: "u1", Email: "alice@example.com", Role: domain.RoleStudent},
		updateFn: func(update domain.ProfileUpdate) error {
			got = update
			return nil
		},
	}
	e := newSessionServer(stub, "u1")

	rec := doJSON(e, http.MethodPatch, "/v1/profile", `{"phone":"555-0100","company":"Acme"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Phone == nil || *got.Phone != "555-0100" {
		t.Fatalf("phone not forwarded: %+v", got)
	}
	if got.FullName != nil {
		t.Fatalf("untouched field should stay nil")
	}
}
