package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"eduai/internal/errors"
	"eduai/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PaymentRequest represents a payment intent request.
type PaymentRequest struct {
	Amount         string                 `json:"amount" validate:"required"`
	PaymentMethod  string                 `json:"payment_method" validate:"required,oneof=card bank_transfer virtual_account"`
	PaymentDetails map[string]interface{} `json:"payment_details"`
}

// PaymentResponse represents a payment response.
type PaymentResponse struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	Amount    string `json:"amount"`
	Method    string `json:"payment_method"`
}

// CreatePayment godoc
// @Summary Record a payment intent
// @Description Stores the intent as pending. Card numbers are masked and CVVs are never stored.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentRequest true "Payment data"
// @Success 201 {object} PaymentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req PaymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount format",
			Code:  "INVALID_AMOUNT",
		})
	}

	intent, err := h.paymentService.CreatePaymentIntent(c.Request().Context(), callerFrom(c), service.PaymentIntentInput{
		Amount:  amount,
		Method:  req.PaymentMethod,
		Details: req.PaymentDetails,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, PaymentResponse{
		PaymentID: intent.ID.String(),
		Status:    string(intent.Status),
		Amount:    intent.Amount.StringFixed(2),
		Method:    intent.PaymentMethod,
	})
}
