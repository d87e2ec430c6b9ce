package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eduai/internal/service"
)

// ReviewHandler handles customer review endpoints.
type ReviewHandler struct {
	reviews service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviews service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// ReviewRequest is the body for posting or editing a review.
type ReviewRequest struct {
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Rating       int     `json:"rating"`
	Region       *string `json:"region"`
	Organization *string `json:"organization"`
}

func (r ReviewRequest) input() service.ReviewInput {
	return service.ReviewInput{
		Title:        r.Title,
		Content:      r.Content,
		Rating:       r.Rating,
		Region:       r.Region,
		Organization: r.Organization,
	}
}

// List godoc
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param limit query int false "Maximum number of reviews"
// @Success 200 {array} model.Review
// @Router /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviews.List(c.Request().Context(), service.ReviewFilter{Limit: queryLimit(c)})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// ListByUser godoc
// @Summary List a user's reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {array} model.Review
// @Router /users/{userId}/reviews [get]
func (h *ReviewHandler) ListByUser(c echo.Context) error {
	reviews, err := h.reviews.List(c.Request().Context(), service.ReviewFilter{
		UserID: c.Param("userId"),
		Limit:  queryLimit(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// Get godoc
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} model.Review
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	review, err := h.reviews.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, review)
}

// Create godoc
// @Summary Post a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReviewRequest true "Review"
// @Success 201 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req ReviewRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	review, err := h.reviews.Create(c.Request().Context(), callerFrom(c), req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, review)
}

// Update godoc
// @Summary Edit a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body ReviewRequest true "Review"
// @Success 200 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req ReviewRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	review, err := h.reviews.Update(c.Request().Context(), callerFrom(c), id, req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, review)
}

// Delete godoc
// @Summary Delete a review
// @Tags reviews
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.reviews.Delete(c.Request().Context(), callerFrom(c), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
