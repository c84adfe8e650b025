package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SiteHandler serves the public landing document.
type SiteHandler struct{}

func NewSiteHandler() *SiteHandler {
	return &SiteHandler{}
}

type siteResponse struct {
	Name  string            `json:"name"`
	Links map[string]string `json:"links"`
}

// Home handles GET /.
//
// @Summary      Public landing
// @Tags         site
// @Produce      json
// @Success      200  {object}  siteResponse
// @Router       / [get]
func (h *SiteHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, siteResponse{
		Name: "Zoo Arcadia",
		Links: map[string]string{
			"services": "/services",
			"habitats": "/habitats",
			"animals":  "/animals",
			"reviews":  "/reviews",
			"contact":  "/contact",
			"login":    "/login",
		},
	})
}
