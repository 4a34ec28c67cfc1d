package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/identity-system/internal/core/domain"
)

// SessionHandler exposes read-only session state and the one-shot landing
// dispatch.
type SessionHandler struct {
	session Session
}

func NewSessionHandler(session Session) *SessionHandler {
	return &SessionHandler{session: session}
}

// Current returns the session snapshot consumers render from.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionResponse{
		User:          h.session.User(),
		Authenticated: h.session.IsAuthenticated(),
		Loading:       h.session.Loading(),
	})
}

// Landing dispatches the signed-in user to their role's landing surface.
// Recruiters always go to the HRMS surface; every other role follows the
// dashboard table. One-shot: this changes no state.
//
// @Summary      Post-authentication landing dispatch
// @Tags         session
// @Success      302
// @Router       /v1/session/landing [get]
func (h *SessionHandler) Landing(c echo.Context) error {
	return c.Redirect(http.StatusFound, domain.LandingRoute(h.session.User()))
}
