package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ahams/appointment-register/internal/core/domain"
	"github.com/ahams/appointment-register/internal/core/ports"
)

// DepartmentHandler handles the department list routes.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// List returns all department names.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Add creates a department. A duplicate name is a soft failure (200 with
// success=false), matching the original client contract.
//
// @Summary      Add a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        body  body      departmentRequest  true  "Department name"
// @Success      200   {object}  successResponse
// @Router       /api/departments [post]
func (h *DepartmentHandler) Add(c echo.Context) error {
	var req departmentRequest
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

	if err := h.service.Add(c.Request().Context(), sess, req.DepartmentName); err != nil {
		if errors.Is(err, domain.ErrDepartmentExists) {
			return c.JSON(http.StatusOK, successResponse{Success: false, Message: "Department already exists"})
		}
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Department added successfully"})
}

// Remove deletes a department. Idempotent, as in the original register.
//
// @Summary      Delete a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        body  body      departmentRequest  true  "Department name"
// @Success      200   {object}  successResponse
// @Router       /api/departments [delete]
func (h *DepartmentHandler) Remove(c echo.Context) error {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), sess, req.DepartmentName); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Department deleted successfully"})
}
