package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eduai/internal/service"
)

// NoticeHandler handles announcement endpoints.
type NoticeHandler struct {
	notices service.NoticeService
}

// NewNoticeHandler creates a new notice handler.
func NewNoticeHandler(notices service.NoticeService) *NoticeHandler {
	return &NoticeHandler{notices: notices}
}

// NoticeRequest is the body for creating or editing a notice.
type NoticeRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsImportant bool   `json:"is_important"`
}

func (r NoticeRequest) input() service.NoticeInput {
	return service.NoticeInput{Title: r.Title, Content: r.Content, IsImportant: r.IsImportant}
}

// List godoc
// @Summary List notices
// @Tags notices
// @Produce json
// @Param important query bool false "Only important notices"
// @Param limit query int false "Maximum number of notices"
// @Success 200 {array} model.Notice
// @Failure 500 {object} errors.ErrorResponse
// @Router /notices [get]
func (h *NoticeHandler) List(c echo.Context) error {
	notices, err := h.notices.List(c.Request().Context(), service.NoticeFilter{
		ImportantOnly: queryBool(c, "important"),
		Limit:         queryLimit(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, notices)
}

// Get godoc
// @Summary Get a notice
// @Tags notices
// @Produce json
// @Param id path int true "Notice ID"
// @Success 200 {object} model.Notice
// @Failure 404 {object} errors.ErrorResponse
// @Router /notices/{id} [get]
func (h *NoticeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	notice, err := h.notices.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, notice)
}

// Create godoc
// @Summary Create a notice
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NoticeRequest true "Notice"
// @Success 201 {object} model.Notice
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /notices [post]
func (h *NoticeHandler) Create(c echo.Context) error {
	var req NoticeRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	notice, err := h.notices.Create(c.Request().Context(), callerFrom(c), req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, notice)
}

// Update godoc
// @Summary Edit a notice
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notice ID"
// @Param request body NoticeRequest true "Notice"
// @Success 200 {object} model.Notice
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notices/{id} [put]
func (h *NoticeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req NoticeRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	notice, err := h.notices.Update(c.Request().Context(), callerFrom(c), id, req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, notice)
}

// Delete godoc
// @Summary Delete a notice
// @Tags notices
// @Security BearerAuth
// @Param id path int true "Notice ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notices/{id} [delete]
func (h *NoticeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.notices.Delete(c.Request().Context(), callerFrom(c), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
