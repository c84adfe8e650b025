package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
)

// ContactHandler forwards the public contact form to the backend.
type ContactHandler struct {
	contact ports.ContactGateway
}

func NewContactHandler(contact ports.ContactGateway) *ContactHandler {
	return &ContactHandler{contact: contact}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

// Send handles POST /contact.
//
// @Summary      Send a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /contact [post]
func (h *ContactHandler) Send(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.contact.SendContact(c.Request().Context(), domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, map[string]string{"message": "message sent"})
}
