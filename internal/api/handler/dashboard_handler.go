package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zoo-arcadia/arcadia-gateway/internal/api/middleware"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
)

// DashboardHandler routes visitors to their role dashboard and serves each
// dashboard's entry document.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

type dashboardResponse struct {
	Identity *domain.Identity `json:"identity"`
	Sections []string         `json:"sections"`
}

// Entry redirects an authenticated visitor to their role's dashboard.
// Anonymous visitors go to the login view. A role outside the known set has
// no dashboard: the visitor stays where they are and gets their session back.
//
// @Summary      Dashboard entry
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Entry(c echo.Context) error {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return c.Redirect(http.StatusFound, "/login")
	}
	landing := identity.Role.Landing()
	if landing == "" {
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, Identity: identity})
	}
	return c.Redirect(http.StatusFound, landing)
}

// Admin serves the admin console entry document.
func (h *DashboardHandler) Admin(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		Identity: identity,
		Sections: []string{"animals", "habitats", "services", "register"},
	})
}

// Vet serves the veterinarian console entry document.
func (h *DashboardHandler) Vet(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		Identity: identity,
		Sections: []string{"animals", "reports"},
	})
}

// Employee serves the employee console entry document.
func (h *DashboardHandler) Employee(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		Identity: identity,
		Sections: []string{"food-records", "reviews", "services"},
	})
}
