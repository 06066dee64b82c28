package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ahams/appointment-register/internal/core/ports"
)

// ReportHandler serves the read-only report, log and backup routes.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type interactionResponse struct {
	Success bool                     `json:"success"`
	Data    any                      `json:"data"`
	Summary ports.InteractionSummary `json:"summary"`
}

// Daily returns all appointments booked for one date.
//
// @Summary      Daily report
// @Tags         reports
// @Produce      json
// @Param        date  query     string  true  "Appointment date"
// @Success      200   {object}  dataResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}

	list, err := h.service.Daily(c.Request().Context(), date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: list})
}

// Comprehensive returns appointments within a date range, optionally
// filtered by department.
//
// @Summary      Comprehensive report
// @Tags         reports
// @Produce      json
// @Param        startDate   query     string  false  "Range start"
// @Param        endDate     query     string  false  "Range end"
// @Param        department  query     string  false  "Department filter"
// @Success      200         {object}  dataResponse
// @Router       /api/reports/comprehensive [get]
func (h *ReportHandler) Comprehensive(c echo.Context) error {
	list, err := h.service.Comprehensive(c.Request().Context(), reportInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: list})
}

// Interaction returns the same slice as Comprehensive plus per-status tallies.
//
// @Summary      Interaction report
// @Tags         reports
// @Produce      json
// @Param        startDate   query     string  false  "Range start"
// @Param        endDate     query     string  false  "Range end"
// @Param        department  query     string  false  "Department filter"
// @Success      200         {object}  interactionResponse
// @Router       /api/reports/interaction [get]
func (h *ReportHandler) Interaction(c echo.Context) error {
	list, summary, err := h.service.Interaction(c.Request().Context(), reportInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, interactionResponse{Success: true, Data: list, Summary: summary})
}

// Logs returns the audit trail, oldest first.
//
// @Summary      Audit log
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dataResponse
// @Router       /api/logs [get]
func (h *ReportHandler) Logs(c echo.Context) error {
	entries, err := h.service.Logs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: entries})
}

// Backup streams a full register export as a downloadable JSON file.
//
// @Summary      Download a backup
// @Tags         reports
// @Produce      json
// @Success      200  {object}  ports.Backup
// @Router       /api/backup [get]
func (h *ReportHandler) Backup(c echo.Context) error {
	backup, err := h.service.Export(c.Request().Context())
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.JSON(http.StatusOK, backup)
}

func reportInput(c echo.Context) ports.ReportInput {
	return ports.ReportInput{
		StartDate:  c.QueryParam("startDate"),
		EndDate:    c.QueryParam("endDate"),
		Department: c.QueryParam("department"),
	}
}
