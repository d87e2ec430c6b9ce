package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eduai/internal/model"
	"eduai/internal/service"
)

// AdminUserHandler exposes user management to administrators.
type AdminUserHandler struct {
	users        service.UserService
	entitlements service.EntitlementService
	plans        service.PlanService
}

// NewAdminUserHandler creates a new admin user handler.
func NewAdminUserHandler(users service.UserService, entitlements service.EntitlementService, plans service.PlanService) *AdminUserHandler {
	return &AdminUserHandler{users: users, entitlements: entitlements, plans: plans}
}

// PermissionRequest sets one entitlement field on a user.
// Value is a boolean, or a number for max_speed.
type PermissionRequest struct {
	Permission string      `json:"permission" validate:"required"`
	Value      interface{} `json:"value"`
}

// PlanRequest assigns a plan by name.
type PlanRequest struct {
	Plan string `json:"plan"`
}

// List godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminUserHandler) List(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context(), callerFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary Get a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{userId} [get]
func (h *AdminUserHandler) Get(c echo.Context) error {
	user, err := h.users.GetUser(c.Request().Context(), callerFrom(c), c.Param("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// SetPermission godoc
// @Summary Set one entitlement field
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body PermissionRequest true "Field and value"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{userId}/permissions [patch]
func (h *AdminUserHandler) SetPermission(c echo.Context) error {
	var req PermissionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	update, err := model.ParseFieldUpdate(req.Permission, req.Value)
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.entitlements.SetUserEntitlementField(c.Request().Context(), callerFrom(c), c.Param("userId"), update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// SetPlan godoc
// @Summary Assign a plan
// @Description Writes the plan name and copies the plan's feature template onto the user.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body PlanRequest true "Plan name"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/users/{userId}/plan [patch]
func (h *AdminUserHandler) SetPlan(c echo.Context) error {
	var req PlanRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	user, err := h.plans.ApplyPlan(c.Request().Context(), callerFrom(c), c.Param("userId"), req.Plan)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
