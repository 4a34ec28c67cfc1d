package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

// DashboardHandler serves the role landing surfaces. The screens themselves
// are owned by the marketplace frontends; these endpoints exist so every
// dashboard route in the canonical table resolves behind its guard.
type DashboardHandler struct {
	session Session
}

func NewDashboardHandler(session Session) *DashboardHandler {
	return &DashboardHandler{session: session}
}

// Screen answers the guarded dashboard route for a role.
func (h *DashboardHandler) Screen(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"screen": string(role) + " dashboard",
			"route":  h.session.DashboardRoute(role),
		})
	}
}

// HRMS answers the recruiter operational surface the landing dispatch
// prefers over the generic dashboard.
func (h *DashboardHandler) HRMS(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"screen": "recruiter hrms",
		"route":  domain.RecruiterHRMSRoute,
	})
}
