package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"eduai/internal/audit"
	apperr "eduai/internal/errors"
	"eduai/internal/identity"
	"eduai/internal/model"
	"eduai/internal/repository"
)

// PaymentIntentInput is a customer's request to pay.
type PaymentIntentInput struct {
	Amount  decimal.Decimal
	Method  string
	Details map[string]interface{}
}

// PaymentService records payment intents. Capturing funds is out of scope.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, caller identity.Caller, in PaymentIntentInput) (*model.PaymentIntent, error)
}

type paymentService struct {
	repo      repository.PaymentRepository
	resolver  *identity.Resolver
	validator *CardValidator
	audit     audit.Recorder
}

// NewPaymentService creates a new payment service.
func NewPaymentService(repo repository.PaymentRepository, resolver *identity.Resolver, recorder audit.Recorder) PaymentService {
	if recorder == nil {
		recorder = audit.Discard
	}
	return &paymentService{
		repo:      repo,
		resolver:  resolver,
		validator: NewCardValidator(),
		audit:     recorder,
	}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, caller identity.Caller, in PaymentIntentInput) (*model.PaymentIntent, error) {
	if err := s.resolver.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.Validation("amount must be greater than zero")
	}

	details, err := s.sanitizeDetails(in.Method, in.Details)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, apperr.Validation("payment_details must be a JSON object")
	}

	payment := &model.PaymentIntent{
		UserID:         caller.UserID,
		Amount:         in.Amount,
		PaymentMethod:  in.Method,
		PaymentDetails: datatypes.JSON(raw),
		Status:         model.PaymentStatusPending,
	}
	err = s.repo.Create(ctx, payment)
	s.audit.Record(ctx, auditEvent(model.AuditPaymentCreated, caller, payment.ID.String(), fmt.Sprintf("%s %s", in.Method, in.Amount.StringFixed(2)), err))
	if err != nil {
		return nil, apperr.Backend("create payment", err)
	}
	return payment, nil
}

// sanitizeDetails validates method-specific details and strips secrets.
// card_number is masked and cvv is never stored.
func (s *paymentService) sanitizeDetails(method string, details map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(details))
	for k, v := range details {
		if k == "cvv" {
			continue
		}
		out[k] = v
	}

	switch method {
	case model.PaymentMethodCard:
		number, _ := details["card_number"].(string)
		expiry, _ := details["expiry"].(string)
		cvv, _ := details["cvv"].(string)
		if err := s.validator.ValidateCard(number, expiry, cvv); err != nil {
			return nil, err
		}
		out["card_number"] = s.validator.MaskCardNumber(number)
	case model.PaymentMethodBankTransfer, model.PaymentMethodVirtual:
	default:
		return nil, apperr.Validation(fmt.Sprintf("unsupported payment_method %q", method))
	}
	return out, nil
}
