package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"eduai/internal/errors"
	"eduai/internal/mail"
	"eduai/internal/service"
)

// MailHandler relays website contact forms to the operators.
type MailHandler struct {
	mail service.MailService
}

// NewMailHandler creates a new mail handler.
func NewMailHandler(mail service.MailService) *MailHandler {
	return &MailHandler{mail: mail}
}

// ContactRequest is a website contact form submission.
type ContactRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// MailResponse is the envelope the contact forms expect.
type MailResponse struct {
	Success bool          `json:"success"`
	Data    *mail.Receipt `json:"data,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// SendContact godoc
// @Summary Send a contact form
// @Tags mail
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact form"
// @Success 200 {object} MailResponse
// @Failure 400 {object} MailResponse
// @Failure 500 {object} MailResponse
// @Router /send-email [post]
func (h *MailHandler) SendContact(c echo.Context) error {
	return h.send(c, h.mail.SendContact)
}

// SendInquiry godoc
// @Summary Send an inquiry notification
// @Tags mail
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Inquiry form"
// @Success 200 {object} MailResponse
// @Failure 400 {object} MailResponse
// @Failure 500 {object} MailResponse
// @Router /inquiry/send-email [post]
func (h *MailHandler) SendInquiry(c echo.Context) error {
	return h.send(c, h.mail.SendInquiryAlert)
}

func (h *MailHandler) send(c echo.Context, deliver func(context.Context, service.ContactMessage) (*mail.Receipt, error)) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MailResponse{Error: "invalid request body"})
	}

	receipt, err := deliver(c.Request().Context(), service.ContactMessage{
		Email:   req.Email,
		Name:    req.Name,
		Message: req.Message,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode >= http.StatusInternalServerError {
			c.Logger().Errorf("send mail: %v", err)
			return c.JSON(httpErr.StatusCode, MailResponse{Error: "메일 전송에 실패했습니다."})
		}
		return c.JSON(httpErr.StatusCode, MailResponse{Error: httpErr.Message})
	}

	return c.JSON(http.StatusOK, MailResponse{Success: true, Data: receipt})
}
