package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cinelog/internal/errors"
	"cinelog/internal/service"
)

// UserHandler handles account management endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// PasswordUpdateRequest represents a password change request.
type PasswordUpdateRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// ListUsers godoc
// @Summary List account ids and usernames
// @Tags users
// @Produce json
// @Success 200 {array} service.UserSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser godoc
// @Summary Delete an account
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	claims := CurrentClaims(c)
	if claims == nil {
		return respondError(c, errors.ErrInvalidCredentials)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondError(c, errors.ErrMissingFields)
	}

	if err := h.svc.DeleteUser(c.Request().Context(), claims.UserID, uint(id)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "User deleted successfully",
	})
}

// UpdatePassword godoc
// @Summary Change the authenticated user's password
// @Tags users
// @Accept json
// @Produce json
// @Param request body PasswordUpdateRequest true "Current and new passwords"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /password-update [put]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	claims := CurrentClaims(c)
	if claims == nil {
		return respondError(c, errors.ErrInvalidCredentials)
	}

	var req PasswordUpdateRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, errors.ErrMissingFields)
	}

	if err := h.svc.UpdatePassword(c.Request().Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Password updated successfully!",
	})
}
