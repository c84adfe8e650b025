package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zoo-arcadia/arcadia-gateway/internal/cache"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
)

// HabitatHandler proxies the habitats collection.
type HabitatHandler struct {
	habitats ports.HabitatGateway
	cache    *cache.Public
}

func NewHabitatHandler(habitats ports.HabitatGateway, cache *cache.Public) *HabitatHandler {
	return &HabitatHandler{habitats: habitats, cache: cache}
}

type habitatRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

// List handles GET /habitats.
//
// @Summary      List habitats
// @Tags         habitats
// @Produce      json
// @Success      200  {array}  domain.Habitat
// @Router       /habitats [get]
func (h *HabitatHandler) List(c echo.Context) error {
	if v, ok := h.cache.Get(cache.KeyHabitats); ok {
		return c.JSON(http.StatusOK, v)
	}
	habitats, err := h.habitats.ListHabitats(c.Request().Context())
	if err != nil {
		return err
	}
	h.cache.Set(cache.KeyHabitats, habitats)
	return c.JSON(http.StatusOK, habitats)
}

// Get handles GET /habitats/:id.
func (h *HabitatHandler) Get(c echo.Context) error {
	habitat, err := h.habitats.GetHabitat(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, habitat)
}

// Create handles POST /admin/habitats.
func (h *HabitatHandler) Create(c echo.Context) error {
	req, bearer, err := h.bind(c)
	if err != nil {
		return err
	}
	habitat, err := h.habitats.CreateHabitat(c.Request().Context(), bearer, domain.Habitat{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	h.cache.Invalidate(cache.KeyHabitats)
	return c.JSON(http.StatusCreated, habitat)
}

// Update handles PUT /admin/habitats/:id.
func (h *HabitatHandler) Update(c echo.Context) error {
	req, bearer, err := h.bind(c)
	if err != nil {
		return err
	}
	habitat, err := h.habitats.UpdateHabitat(c.Request().Context(), bearer, c.Param("id"), domain.Habitat{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	h.cache.Invalidate(cache.KeyHabitats)
	return c.JSON(http.StatusOK, habitat)
}

// Delete handles DELETE /admin/habitats/:id.
func (h *HabitatHandler) Delete(c echo.Context) error {
	bearer, err := ctxBearer(c)
	if err != nil {
		return err
	}
	if err := h.habitats.DeleteHabitat(c.Request().Context(), bearer, c.Param("id")); err != nil {
		return err
	}
	h.cache.Invalidate(cache.KeyHabitats)
	return c.NoContent(http.StatusNoContent)
}

func (h *HabitatHandler) bind(c echo.Context) (*habitatRequest, string, error) {
	var req habitatRequest
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
