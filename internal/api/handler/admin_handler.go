package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/identity-system/internal/api/metrics"
	"github.com/careerbridge/identity-system/internal/core/domain"
)

// Admin is the privileged-session contract consumed by the HTTP surface. It is
// deliberately separate from Session: the two trust boundaries never merge.
type Admin interface {
	Login(ctx context.Context, username, password string) (*domain.AdminIdentity, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) *domain.AdminIdentity
}

type AdminHandler struct {
	admin Admin
}

func NewAdminHandler(admin Admin) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Login opens the privileged session.
//
// @Summary      Admin sign in
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Admin credentials"
// @Success      200   {object}  adminSessionResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	admin, err := h.admin.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrTransport) {
			metrics.AdminLoginsTotal.WithLabelValues("transport_error").Inc()
		} else {
			metrics.AdminLoginsTotal.WithLabelValues("credential_error").Inc()
		}
		return err
	}

	metrics.AdminLoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, adminSessionResponse{Admin: admin, Authenticated: true})
}

// Logout closes the privileged session. Touches only the admin namespace.
//
// @Summary      Admin sign out
// @Tags         admin
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /v1/admin/logout [post]
func (h *AdminHandler) Logout(c echo.Context) error {
	if err := h.admin.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "signed out"})
}

// Session returns the privileged session snapshot.
//
// @Summary      Admin session
// @Tags         admin
// @Produce      json
// @Success      200  {object}  adminSessionResponse
// @Router       /v1/admin/session [get]
func (h *AdminHandler) Session(c echo.Context) error {
	current := h.admin.Current(c.Request().Context())
	return c.JSON(http.StatusOK, adminSessionResponse{Admin: current, Authenticated: current != nil})
}
