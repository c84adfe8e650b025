package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zoo-arcadia/arcadia-gateway/internal/cache"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
)

// ServiceHandler proxies the visitor services collection. Admins own create
// and delete; employees may update descriptions from their console.
type ServiceHandler struct {
	services ports.ZooServiceGateway
	cache    *cache.Public
}

func NewServiceHandler(services ports.ZooServiceGateway, cache *cache.Public) *ServiceHandler {
	return &ServiceHandler{services: services, cache: cache}
}

type zooServiceRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

// List handles GET /services.
//
// @Summary      List visitor services
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.ZooService
// @Router       /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	if v, ok := h.cache.Get(cache.KeyServices); ok {
		return c.JSON(http.StatusOK, v)
	}
	services, err := h.services.ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	h.cache.Set(cache.KeyServices, services)
	return c.JSON(http.StatusOK, services)
}

// Create handles POST /admin/services.
func (h *ServiceHandler) Create(c echo.Context) error {
	req, bearer, err := h.bind(c)
	if err != nil {
		return err
	}
	svc, err := h.services.CreateService(c.Request().Context(), bearer, domain.ZooService{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	h.cache.Invalidate(cache.KeyServices)
	return c.JSON(http.StatusCreated, svc)
}

// Update handles PUT /admin/services/:id and PUT /employee/services/:id.
func (h *ServiceHandler) Update(c echo.Context) error {
	req, bearer, err := h.bind(c)
	if err != nil {
		return err
	}
	svc, err := h.services.UpdateService(c.Request().Context(), bearer, c.Param("id"), domain.ZooService{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	h.cache.Invalidate(cache.KeyServices)
	return c.JSON(http.StatusOK, svc)
}

// Delete handles DELETE /admin/services/:id.
func (h *ServiceHandler) Delete(c echo.Context) error {
	bearer, err := ctxBearer(c)
	if err != nil {
		return err
	}
	if err := h.services.DeleteService(c.Request().Context(), bearer, c.Param("id")); err != nil {
		return err
	}
	h.cache.Invalidate(cache.KeyServices)
	return c.NoContent(http.StatusNoContent)
}

func (h *ServiceHandler) bind(c echo.Context) (*zooServiceRequest, string, error) {
	var req zooServiceRequest
	if err := c.Bind(&req); err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bearer, err := ctxBearer(c)
	if err != nil {
		return nil, "", err
	}
	return &req, bearer, nil
}
