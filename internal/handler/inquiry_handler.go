package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eduai/internal/service"
)

// InquiryHandler handles support ticket endpoints.
type InquiryHandler struct {
	inquiries service.InquiryService
}

// NewInquiryHandler creates a new inquiry handler.
func NewInquiryHandler(inquiries service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// InquiryRequest is the body for opening or editing an inquiry.
type InquiryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ReplyRequest is an operator's answer to an inquiry.
type ReplyRequest struct {
	Reply string `json:"reply"`
}

// List godoc
// @Summary List inquiries
// @Description Admins see every inquiry; other users see their own.
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param unanswered query bool false "Only pending inquiries"
// @Success 200 {array} model.Inquiry
// @Failure 401 {object} errors.ErrorResponse
// @Router /inquiries [get]
func (h *InquiryHandler) List(c echo.Context) error {
	inquiries, err := h.inquiries.List(c.Request().Context(), callerFrom(c), service.InquiryFilter{
		UnansweredOnly: queryBool(c, "unanswered"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, inquiries)
}

// Get godoc
// @Summary Get an inquiry
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Success 200 {object} model.Inquiry
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /inquiries/{id} [get]
func (h *InquiryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	inquiry, err := h.inquiries.Get(c.Request().Context(), callerFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, inquiry)
}

// Create godoc
// @Summary Open an inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body InquiryRequest true "Inquiry"
// @Success 201 {object} model.Inquiry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /inquiries [post]
func (h *InquiryHandler) Create(c echo.Context) error {
	var req InquiryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	inquiry, err := h.inquiries.Create(c.Request().Context(), callerFrom(c), service.InquiryInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, inquiry)
}

// Update godoc
// @Summary Edit an inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Param request body InquiryRequest true "Inquiry"
// @Success 200 {object} model.Inquiry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /inquiries/{id} [put]
func (h *InquiryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req InquiryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	inquiry, err := h.inquiries.Update(c.Request().Context(), callerFrom(c), id, service.InquiryInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, inquiry)
}

// Delete godoc
// @Summary Delete an inquiry
// @Tags inquiries
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.inquiries.Delete(c.Request().Context(), callerFrom(c), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Reply godoc
// @Summary Answer an inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Param request body ReplyRequest true "Reply"
// @Success 200 {object} model.Inquiry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /inquiries/{id}/reply [post]
func (h *InquiryHandler) Reply(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req ReplyRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	inquiry, err := h.inquiries.Reply(c.Request().Context(), callerFrom(c), id, req.Reply)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, inquiry)
}
