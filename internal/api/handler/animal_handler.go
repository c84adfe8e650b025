package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zoo-arcadia/arcadia-gateway/internal/cache"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
)

// AnimalHandler proxies the animals collection. Reads are public and served
// through the content cache; mutations are admin console operations.
type AnimalHandler struct {
	animals ports.AnimalGateway
	cache   *cache.Public
}

func NewAnimalHandler(animals ports.AnimalGateway, cache *cache.Public) *AnimalHandler {
	return &AnimalHandler{animals: animals, cache: cache}
}

type animalRequest struct {
	Name      string   `json:"name"      validate:"required"`
	Race      string   `json:"race"      validate:"required"`
	Habitat   string   `json:"habitat"   validate:"required"`
	ImagesURL []string `json:"imagesUrl"`
}

// List handles GET /animals.
//
// @Summary      List animals
// @Tags         animals
// @Produce      json
// @Success      200  {array}  domain.Animal
// @Router       /animals [get]
func (h *AnimalHandler) List(c echo.Context) error {
	if v, ok := h.cache.Get(cache.KeyAnimals); ok {
		return c.JSON(http.StatusOK, v)
	}
	animals, err := h.animals.ListAnimals(c.Request().Context())
	if err != nil {
		return err
	}
	h.cache.Set(cache.KeyAnimals, animals)
	return c.JSON(http.StatusOK, animals)
}

// Get handles GET /animals/:id.
func (h *AnimalHandler) Get(c echo.Context) error {
	animal, err := h.animals.GetAnimal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animal)
}

// Create handles POST /admin/animals.
//
// @Summary      Create an animal
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        body  body      animalRequest  true  "Animal"
// @Success      201   {object}  domain.Animal
// @Failure      400   {object}  map[string]string
// @Router       /admin/animals [post]
func (h *AnimalHandler) Create(c echo.Context) error {
	req, bearer, err := h.bind(c)
	if err != nil {
		return err
	}
	animal, err := h.animals.CreateAnimal(c.Request().Context(), bearer, domain.Animal{
		Name:      req.Name,
		Race:      req.Race,
		Habitat:   req.Habitat,
		ImagesURL: req.ImagesURL,
	})
	if err != nil {
		return err
	}
	h.cache.Invalidate(cache.KeyAnimals)
	return c.JSON(http.StatusCreated, animal)
}

// Update handles PUT /admin/animals/:id.
func (h *AnimalHandler) Update(c echo.Context) error {
	req, bearer, err := h.bind(c)
	if err != nil {
		return err
	}
	animal, err := h.animals.UpdateAnimal(c.Request().Context(), bearer, c.Param("id"), domain.Animal{
		Name:      req.Name,
		Race:      req.Race,
		Habitat:   req.Habitat,
		ImagesURL: req.ImagesURL,
	})
	if err != nil {
		return err
	}
	h.cache.Invalidate(cache.KeyAnimals)
	return c.JSON(http.StatusOK, animal)
}

// Delete handles DELETE /admin/animals/:id.
func (h *AnimalHandler) Delete(c echo.Context) error {
	bearer, err := ctxBearer(c)
	if err != nil {
		return err
	}
	if err := h.animals.DeleteAnimal(c.Request().Context(), bearer, c.Param("id")); err != nil {
		return err
	}
	h.cache.Invalidate(cache.KeyAnimals)
	return c.NoContent(http.StatusNoContent)
}

func (h *AnimalHandler) bind(c echo.Context) (*animalRequest, string, error) {
	var req animalRequest
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
