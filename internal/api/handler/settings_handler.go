package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ahams/appointment-register/internal/core/ports"
)

// SettingsHandler handles the appointment numbering settings.
type SettingsHandler struct {
	service ports.AppointmentService
}

func NewSettingsHandler(service ports.AppointmentService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Numbering returns the serial numbering settings.
//
// @Summary      Get numbering settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dataResponse
// @Router       /api/settings/appointment-number [get]
func (h *SettingsHandler) Numbering(c echo.Context) error {
	settings, err := h.service.Numbering(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: settings})
}

// UpdateNumbering changes the starting serial and optionally rewinds the
// counter so the next appointment takes the new start.
//
// @Summary      Update numbering settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      numberingRequest  true  "Numbering change"
// @Success      200   {object}  dataResponse
// @Router       /api/settings/appointment-number [put]
func (h *SettingsHandler) UpdateNumbering(c echo.Context) error {
	var req numberingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	settings, err := h.service.UpdateNumbering(c.Request().Context(), req.StartFrom, req.ResetCounter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: settings})
}
