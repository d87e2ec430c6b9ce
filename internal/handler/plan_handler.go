package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eduai/internal/model"
	"eduai/internal/service"
)

// PlanHandler serves subscription plans and their feature templates.
type PlanHandler struct {
	entitlements service.EntitlementService
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(entitlements service.EntitlementService) *PlanHandler {
	return &PlanHandler{entitlements: entitlements}
}

// PlanFeaturesRequest is a full replacement of a plan's template.
type PlanFeaturesRequest struct {
	CanAutoClick   bool    `json:"can_auto_click"`
	CanAutoPlay    bool    `json:"can_auto_play"`
	CanChangeSpeed bool    `json:"can_change_speed"`
	CanMute        bool    `json:"can_mute"`
	MaxSpeed       float64 `json:"max_speed" validate:"gte=0"`
}

// ListPlans godoc
// @Summary List plans
// @Tags plans
// @Produce json
// @Success 200 {array} model.Plan
// @Failure 500 {object} errors.ErrorResponse
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c echo.Context) error {
	plans, err := h.entitlements.ListPlans(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, plans)
}

// GetFeatures godoc
// @Summary Get a plan's feature template
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} model.PlanFeature
// @Failure 404 {object} errors.ErrorResponse
// @Router /plans/{id}/features [get]
func (h *PlanHandler) GetFeatures(c echo.Context) error {
	features, err := h.entitlements.GetPlanFeatures(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, features)
}

// PutFeatures godoc
// @Summary Replace a plan's feature template
// @Description Existing subscribers keep their entitlements until the plan is applied again.
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param request body PlanFeaturesRequest true "Features"
// @Success 200 {object} model.PlanFeature
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /plans/{id}/features [put]
func (h *PlanHandler) PutFeatures(c echo.Context) error {
	var req PlanFeaturesRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	features, err := h.entitlements.UpsertPlanFeatures(c.Request().Context(), callerFrom(c), c.Param("id"), model.Features{
		CanAutoClick:   req.CanAutoClick,
		CanAutoPlay:    req.CanAutoPlay,
		CanChangeSpeed: req.CanChangeSpeed,
		CanMute:        req.CanMute,
		MaxSpeed:       req.MaxSpeed,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, features)
}
