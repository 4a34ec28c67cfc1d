package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

// AdminChecker is the minimal view of the privileged session the guard needs.
type AdminChecker interface {
	Current(ctx context.Context) *domain.AdminIdentity
}

// AdminGuard gates privileged routes on the admin session alone. It never
// consults the general session: an identity whose role claims admin does not
// pass here. The two checks are independent and non-substitutable.
func AdminGuard(admin AdminChecker, loginRoute string) echo.MiddlewareFunc {
	if loginRoute == "" {
		loginRoute = "/admin/login"
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current := admin.Current(c.Request().Context())
			if current == nil {
				return c.Redirect(http.StatusFound, loginRoute)
			}
			c.Set("admin_username", current.Username)
			return next(c)
		}
	}
}
