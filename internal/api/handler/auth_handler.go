package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/identity-system/internal/api/metrics"
	"github.com/careerbridge/identity-system/internal/core/domain"
	"github.com/careerbridge/identity-system/internal/core/ports"
)

// Session is the coordinator contract the HTTP surface consumes. Every other
// subsystem reads identity through this interface, never through the persisted
// store, so storage-key changes cannot drift into consumers.
type Session interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, email, password, fullName string, role domain.Role) (string, error)
	DemoLogin(ctx context.Context, role domain.Role) (string, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error
	User() *domain.Identity
	IsAuthenticated() bool
	Loading() bool
	HasRole(role domain.Role) bool
	DashboardRoute(role domain.Role) string
	DemoCredentials(role domain.Role) (ports.Credentials, bool)
}

type AuthHandler struct {
	session Session
}

func NewAuthHandler(session Session) *AuthHandler {
	return &AuthHandler{session: session}
}

// Login authenticates with production credentials.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	route, err := h.session.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("password", outcomeLabel(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("password", "success").Inc()
	return c.JSON(http.StatusOK, authResponse{User: h.session.User(), RedirectTo: route})
}

// Signup registers a new account and signs it in.
//
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	route, err := h.session.Signup(c.Request().Context(), req.Email, req.Password, req.FullName, domain.Role(req.Role))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("signup", outcomeLabel(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("signup", "success").Inc()
	return c.JSON(http.StatusCreated, authResponse{User: h.session.User(), RedirectTo: route})
}

// DemoLogin signs in with the seeded account for a role.
//
// @Summary      Sign in to a demo account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      demoLoginRequest  true  "Demo role"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/demo-login [post]
func (h *AuthHandler) DemoLogin(c echo.Context) error {
	var req demoLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	route, err := h.session.DemoLogin(c.Request().Context(), domain.Role(req.Role))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("demo", outcomeLabel(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("demo", "success").Inc()
	return c.JSON(http.StatusOK, authResponse{User: h.session.User(), RedirectTo: route})
}

// Logout ends the session. Safe to call when already signed out.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.session.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "signed out"})
}

// DemoCredentials exposes the seeded credential pair for a role, so the login
// screen can prefill demo forms.
//
// @Summary      Fetch demo credentials for a role
// @Tags         auth
// @Produce      json
// @Param        role  path      string  true  "Role"
// @Success      200   {object}  ports.Credentials
// @Failure      404   {object}  errorResponse
// @Router       /v1/auth/demo-credentials/{role} [get]
func (h *AuthHandler) DemoCredentials(c echo.Context) error {
	creds, ok := h.session.DemoCredentials(domain.Role(c.Param("role")))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no demo account for role")
	}
	return c.JSON(http.StatusOK, creds)
}

// outcomeLabel folds an auth error into the metric outcome label.
func outcomeLabel(err error) string {
	if errors.Is(err, domain.ErrTransport) {
		return "transport_error"
	}
	return "credential_error"
}
