package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/identity-system/internal/api/metrics"
	"github.com/careerbridge/identity-system/internal/core/domain"
)

// Toggle is the facet-switch contract consumed by the HTTP surface.
type Toggle interface {
	CanSwitchToRole(target domain.Facet) bool
	SwitchToRole(ctx context.Context, target domain.Facet) error
	ActiveFacet(ctx context.Context) domain.Facet
}

type ToggleHandler struct {
	toggle Toggle
}

func NewToggleHandler(toggle Toggle) *ToggleHandler {
	return &ToggleHandler{toggle: toggle}
}

// Active returns the currently presented facet.
//
// @Summary      Active role facet
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  facetResponse
// @Router       /v1/roles/active [get]
func (h *ToggleHandler) Active(c echo.Context) error {
	return c.JSON(http.StatusOK, facetResponse{Facet: h.toggle.ActiveFacet(c.Request().Context())})
}

// Switch persists a new active facet for the current account.
//
// @Summary      Switch the active role facet
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      switchRoleRequest  true  "Target facet"
// @Success      200   {object}  facetResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/roles/switch [post]
func (h *ToggleHandler) Switch(c echo.Context) error {
	var req switchRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	target := domain.Facet(req.Facet)
	if err := h.toggle.SwitchToRole(c.Request().Context(), target); err != nil {
		return err
	}

	metrics.RoleSwitchesTotal.WithLabelValues(string(target)).Inc()
	return c.JSON(http.StatusOK, facetResponse{Facet: target})
}
