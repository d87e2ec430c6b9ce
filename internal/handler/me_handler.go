package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eduai/internal/errors"
	"eduai/internal/service"
)

// MeHandler serves the signed-in user's own account.
type MeHandler struct {
	users        service.UserService
	entitlements service.EntitlementService
}

// NewMeHandler creates a new me handler.
func NewMeHandler(users service.UserService, entitlements service.EntitlementService) *MeHandler {
	return &MeHandler{users: users, entitlements: entitlements}
}

// DeleteAccountRequest confirms account deletion.
type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

// Profile godoc
// @Summary Get current user profile
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /me [get]
func (h *MeHandler) Profile(c echo.Context) error {
	caller := callerFrom(c)
	user, err := h.users.GetUser(c.Request().Context(), caller, caller.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Entitlement godoc
// @Summary Get current user's effective features
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Features
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /me/entitlement [get]
func (h *MeHandler) Entitlement(c echo.Context) error {
	caller := callerFrom(c)
	if caller.IsGuest() {
		return respondError(c, errors.ErrUnauthenticated)
	}
	features, err := h.entitlements.GetUserEntitlement(c.Request().Context(), caller.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, features)
}

// Delete godoc
// @Summary Delete current user's account
// @Tags me
// @Accept json
// @Security BearerAuth
// @Param request body DeleteAccountRequest true "Password confirmation"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [delete]
func (h *MeHandler) Delete(c echo.Context) error {
	var req DeleteAccountRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.users.DeleteAccount(c.Request().Context(), callerFrom(c), req.Password); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
