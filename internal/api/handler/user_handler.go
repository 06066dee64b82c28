package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ahams/appointment-register/internal/core/ports"
)

// UserHandler handles the admin-only account management routes.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns all accounts without password hashes.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  dataResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: users})
}

// Create adds a new account.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      200   {object}  successResponse
// @Failure      409   {object}  map[string]any
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.UserName,
		Password: req.UserPassword,
		Role:     req.UserRole,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "User added successfully"})
}

// Update changes an account's role and, optionally, its password.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateUserRequest  true  "Account changes"
// @Success      200   {object}  successResponse
// @Router       /api/users [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.service.Update(c.Request().Context(), ports.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "User updated successfully"})
}

// Delete removes an account.
//
// @Summary      Delete a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      deleteUserRequest  true  "Account to delete"
// @Success      200   {object}  successResponse
// @Router       /api/users [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	var req deleteUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Request().Context(), req.Username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "User deleted successfully"})
}

// SetHistoricalPermission grants or revokes the historical-serial permission.
//
// @Summary      Set the historical-serial permission
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      permissionRequest  true  "Permission change"
// @Success      200   {object}  successResponse
// @Router       /api/users/permissions/historical [put]
func (h *UserHandler) SetHistoricalPermission(c echo.Context) error {
	var req permissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.SetHistoricalPermission(c.Request().Context(), req.Username, *req.Allowed); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Permissions updated successfully"})
}
