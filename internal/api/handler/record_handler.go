package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
)

// RecordHandler proxies feeding records for the employee console.
type RecordHandler struct {
	records ports.FoodRecordGateway
}

func NewRecordHandler(records ports.FoodRecordGateway) *RecordHandler {
	return &RecordHandler{records: records}
}

type foodRecordRequest struct {
	Food     string `json:"food"     validate:"required"`
	Quantity string `json:"quantity" validate:"required"`
	Date     string `json:"date"     validate:"required"`
}

// ByAnimal handles GET /employee/animals/:animalID/records.
//
// @Summary      List feeding records for an animal
// @Tags         records
// @Produce      json
// @Success      200  {array}  domain.FoodRecord
// @Router       /employee/animals/{animalID}/records [get]
func (h *RecordHandler) ByAnimal(c echo.Context) error {
	bearer, err := ctxBearer(c)
	if err != nil {
		return err
	}
	records, err := h.records.RecordsByAnimal(c.Request().Context(), bearer, c.Param("animalID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Create handles POST /employee/animals/:animalID/records.
func (h *RecordHandler) Create(c echo.Context) error {
	req, bearer, err := h.bind(c)
	if err != nil {
		return err
	}
	record, err := h.records.CreateRecord(c.Request().Context(), bearer, c.Param("animalID"), domain.FoodRecord{
		Food:     req.Food,
		Quantity: req.Quantity,
		Date:     req.Date,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

// Update handles PUT /employee/records/:id.
func (h *RecordHandler) Update(c echo.Context) error {
	req, bearer, err := h.bind(c)
	if err != nil {
		return err
	}
	record, err := h.records.UpdateRecord(c.Request().Context(), bearer, c.Param("id"), domain.FoodRecord{
		Food:     req.Food,
		Quantity: req.Quantity,
		Date:     req.Date,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /employee/records/:id.
func (h *RecordHandler) Delete(c echo.Context) error {
	bearer, err := ctxBearer(c)
	if err != nil {
		return err
	}
	if err := h.records.DeleteRecord(c.Request().Context(), bearer, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RecordHandler) bind(c echo.Context) (*foodRecordRequest, string, error) {
	var req foodRecordRequest
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
