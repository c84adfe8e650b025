package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
)

// ReportHandler proxies vet reports for the veterinarian console.
type ReportHandler struct {
	reports ports.VetReportGateway
}

func NewReportHandler(reports ports.VetReportGateway) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type vetReportRequest struct {
	State    string `json:"state"    validate:"required"`
	Food     string `json:"food"     validate:"required"`
	Quantity string `json:"quantity" validate:"required"`
	Date     string `json:"date"     validate:"required"`
	Details  string `json:"details"`
}

// List handles GET /vet/reports.
//
// @Summary      List vet reports
// @Tags         reports
// @Produce      json
// @Success      200  {array}  domain.VetReport
// @Router       /vet/reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	bearer, err := ctxBearer(c)
	if err != nil {
		return err
	}
	reports, err := h.reports.ListReports(c.Request().Context(), bearer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

// ByAnimal handles GET /vet/animals/:animalID/reports.
func (h *ReportHandler) ByAnimal(c echo.Context) error {
	bearer, err := ctxBearer(c)
	if err != nil {
		return err
	}
	reports, err := h.reports.ReportsByAnimal(c.Request().Context(), bearer, c.Param("animalID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

// Create handles POST /vet/animals/:animalID/reports.
func (h *ReportHandler) Create(c echo.Context) error {
	req, bearer, err := h.bind(c)
	if err != nil {
		return err
	}
	report, err := h.reports.CreateReport(c.Request().Context(), bearer, c.Param("animalID"), domain.VetReport{
		State:    req.State,
		Food:     req.Food,
		Quantity: req.Quantity,
		Date:     req.Date,
		Details:  req.Details,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, report)
}

// Update handles PUT /vet/reports/:id.
func (h *ReportHandler) Update(c echo.Context) error {
	req, bearer, err := h.bind(c)
	if err != nil {
		return err
	}
	report, err := h.reports.UpdateReport(c.Request().Context(), bearer, c.Param("id"), domain.VetReport{
		State:    req.State,
		Food:     req.Food,
		Quantity: req.Quantity,
		Date:     req.Date,
		Details:  req.Details,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Delete handles DELETE /vet/reports/:id.
func (h *ReportHandler) Delete(c echo.Context) error {
	bearer, err := ctxBearer(c)
	if err != nil {
		return err
	}
	if err := h.reports.DeleteReport(c.Request().Context(), bearer, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ReportHandler) bind(c echo.Context) (*vetReportRequest, string, error) {
	var req vetReportRequest
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
