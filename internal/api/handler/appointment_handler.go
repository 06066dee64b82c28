package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ahams/appointment-register/internal/api/metrics"
	"github.com/ahams/appointment-register/internal/core/domain"
	"github.com/ahams/appointment-register/internal/core/ports"
)

// AppointmentHandler handles all booking routes.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// List returns the full appointment collection.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Success      200  {array}  domain.Appointment
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Create books a new appointment.
//
// @Summary      Create an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	_, err = h.service.Create(c.Request().Context(), sess, ports.CreateAppointmentInput{
		PatientName:      req.PatientName,
		PatientID:        req.PatientID,
		PatientPhone:     req.PatientPhone,
		PatientBirthDate: req.PatientBirthDate,
		AppointmentDate:  req.AppointmentDate,
		AppointmentTime:  req.AppointmentTime,
		Department:       req.Department,
		IsHistorical:     req.IsHistorical,
		SerialNumber:     req.SerialNumber,
	})
	if err != nil {
		return err
	}

	kind := "sequential"
	if req.IsHistorical && req.SerialNumber != 0 {
		kind = "historical"
	}
	metrics.AppointmentsCreatedTotal.WithLabelValues(kind).Inc()

	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Appointment added successfully"})
}

// UpdateStatus sets an appointment's status.
//
// @Summary      Update appointment status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Appointment ID"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  successResponse
// @Router       /api/appointments/{id} [put]
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	status, ok := domain.ParseStatus(req.Status)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
	}

	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	if err := h.service.UpdateStatus(c.Request().Context(), sess, c.Param("id"), status); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Status updated successfully"})
}

// ToggleStatus flips an appointment between waiting and done.
//
// @Summary      Toggle appointment status
// @Tags         appointments
// @Produce      json
// @Param        id  path  string  true  "Appointment ID"
// @Success      200  {object}  successResponse
// @Router       /api/appointments/toggle-status/{id} [put]
func (h *AppointmentHandler) ToggleStatus(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	if _, err := h.service.ToggleStatus(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Status updated successfully"})
}

// Edit applies a partial update to an appointment.
//
// @Summary      Edit an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Appointment ID"
// @Param        body  body      editAppointmentRequest  true  "Fields to change"
// @Success      200   {object}  successResponse
// @Router       /api/appointments/edit/{id} [put]
func (h *AppointmentHandler) Edit(c echo.Context) error {
	var req editAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	err = h.service.Edit(c.Request().Context(), sess, c.Param("id"), ports.EditAppointmentInput{
		PatientName:      req.PatientName,
		PatientID:        req.PatientID,
		PatientPhone:     req.PatientPhone,
		PatientBirthDate: req.PatientBirthDate,
		AppointmentDate:  req.AppointmentDate,
		AppointmentTime:  req.AppointmentTime,
		Department:       req.Department,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Appointment updated successfully"})
}

// Search filters appointments by a single criterion.
//
// @Summary      Search appointments
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      searchRequest  true  "Search criterion"
// @Success      200   {array}   domain.Appointment
// @Router       /api/appointments/search [post]
func (h *AppointmentHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	list, err := h.service.Search(c.Request().Context(), ports.SearchInput{
		Type:  req.SearchType,
		Value: req.SearchValue,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Delete removes one appointment, or every appointment when no id is given.
// The delete-all branch requires the admin role.
//
// @Summary      Delete one or all appointments
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      deleteAppointmentRequest  false  "Appointment to delete; empty deletes all"
// @Success      200   {object}  successResponse
// @Failure      403   {object}  map[string]any
// @Router       /api/appointments [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	var req deleteAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if req.ID == "" {
		if err := h.service.DeleteAll(ctx, sess); err != nil {
			return err
		}
	} else {
		if err := h.service.Delete(ctx, sess, req.ID); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
