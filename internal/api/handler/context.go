package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - account_id and role must be non-empty (presence proves the middleware ran).
//   - the role must belong to the closed enum; a token minted against a
//     drifted schema is structurally valid but operationally unusable.
func ctxClaims(c echo.Context) (accountID string, role domain.Role, err error) {
	accountID, _ = c.Get("account_id").(string)
	rawRole, _ := c.Get("role").(string)
	if accountID == "" || rawRole == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role = domain.Role(rawRole)
	if !role.Valid() {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token carries unknown role")
	}

	return accountID, role, nil
}
