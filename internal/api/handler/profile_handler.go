package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type ProfileHandler struct {
	session Session
}

func NewProfileHandler(session Session) *ProfileHandler {
	return &ProfileHandler{session: session}
}

// Update merges a partial profile change into the current identity. Calling it
// with no active session is a precondition failure (412), not a silent no-op.
//
// @Summary      Update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileUpdateRequest  true  "Partial profile update"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      412   {object}  errorResponse
// @Router       /v1/profile [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if user := h.session.User(); user != nil && user.ID != accountID {
		return echo.NewHTTPError(http.StatusForbidden, "token does not match the active session")
	}

	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.session.UpdateProfile(c.Request().Context(), req.toUpdate()); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		User:          h.session.User(),
		Authenticated: h.session.IsAuthenticated(),
		Loading:       h.session.Loading(),
	})
}
