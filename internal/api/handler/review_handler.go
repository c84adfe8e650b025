package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zoo-arcadia/arcadia-gateway/internal/cache"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
)

// ReviewHandler serves visitor reviews. Anyone may submit one; employees
// moderate visibility from their console.
type ReviewHandler struct {
	reviews ports.ReviewGateway
	cache   *cache.Public
}

func NewReviewHandler(reviews ports.ReviewGateway, cache *cache.Public) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, cache: cache}
}

type reviewRequest struct {
	Pseudo  string `json:"pseudo"  validate:"required,min=3"`
	Comment string `json:"comment" validate:"required,min=3"`
}

// List handles GET /reviews.
//
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  domain.Review
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	if v, ok := h.cache.Get(cache.KeyReviews); ok {
		return c.JSON(http.StatusOK, v)
	}
	reviews, err := h.reviews.ListReviews(c.Request().Context())
	if err != nil {
		return err
	}
	h.cache.Set(cache.KeyReviews, reviews)
	return c.JSON(http.StatusOK, reviews)
}

// Create handles POST /reviews (public).
func (h *ReviewHandler) Create(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	review, err := h.reviews.CreateReview(c.Request().Context(), domain.Review{
		Pseudo:  req.Pseudo,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	h.cache.Invalidate(cache.KeyReviews)
	return c.JSON(http.StatusCreated, review)
}

// ToggleVisibility handles PATCH /employee/reviews/:id/toggle-visibility.
func (h *ReviewHandler) ToggleVisibility(c echo.Context) error {
	bearer, err := ctxBearer(c)
	if err != nil {
		return err
	}
	review, err := h.reviews.ToggleReviewVisibility(c.Request().Context(), bearer, c.Param("id"))
	if err != nil {
		return err
	}
	h.cache.Invalidate(cache.KeyReviews)
	return c.JSON(http.StatusOK, review)
}
