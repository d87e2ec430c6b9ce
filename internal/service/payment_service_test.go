package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperr "eduai/internal/errors"
	"eduai/internal/identity"
	"eduai/internal/model"
)

func TestPaymentService_CreatePaymentIntent(t *testing.T) {
	tests := []struct {
		name    string
		caller  identity.Caller
		in      PaymentIntentInput
		wantErr error
		check   func(t *testing.T, details map[string]interface{})
	}{
		{
			name:   "card details are masked and cvv dropped",
			caller: aliceCaller,
			in: PaymentIntentInput{
				Amount: decimal.NewFromInt(9900),
				Method: model.PaymentMethodCard,
				Details: map[string]interface{}{
					"card_number": "4242 4242 4242 4242",
					"expiry":      "12/99",
					"cvv":         "123",
					"holder":      "Alice",
				},
			},
			check: func(t *testing.T, details map[string]interface{}) {
				assert.Equal(t, "****4242", details["card_number"])
				assert.Equal(t, "12/99", details["expiry"])
				assert.Equal(t, "Alice", details["holder"])
				assert.NotContains(t, details, "cvv")
			},
		},
		{
			name:   "bank transfer",
			caller: aliceCaller,
			in: PaymentIntentInput{
				Amount:  decimal.RequireFromString("19900.00"),
				Method:  model.PaymentMethodBankTransfer,
				Details: map[string]interface{}{"depositor": "김철수"},
			},
			check: func(t *testing.T, details map[string]interface{}) {
				assert.Equal(t, "김철수", details["depositor"])
			},
		},
		{
			name:    "bad card",
			caller:  aliceCaller,
			in:      PaymentIntentInput{Amount: decimal.NewFromInt(1), Method: model.PaymentMethodCard, Details: map[string]interface{}{"card_number": "4242424242424241", "expiry": "12/99", "cvv": "123"}},
			wantErr: apperr.ErrValidation,
		},
		{
			name:    "zero amount",
			caller:  aliceCaller,
			in:      PaymentIntentInput{Amount: decimal.Zero, Method: model.PaymentMethodBankTransfer},
			wantErr: apperr.ErrValidation,
		},
		{
			name:    "unknown method",
			caller:  aliceCaller,
			in:      PaymentIntentInput{Amount: decimal.NewFromInt(1), Method: "bitcoin"},
			wantErr: apperr.ErrValidation,
		},
		{
			name:    "guest",
			caller:  identity.Guest(),
			in:      PaymentIntentInput{Amount: decimal.NewFromInt(1), Method: model.PaymentMethodBankTransfer},
			wantErr: apperr.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPaymentRepository)
			repo.On("Create", mock.Anything, mock.AnythingOfType("*model.PaymentIntent")).Return(nil).Maybe()
			resolver, _ := newResolver()
			audit := &recorder{}

			got, err := NewPaymentService(repo, resolver, audit).CreatePaymentIntent(context.Background(), tt.caller, tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.PaymentStatusPending, got.Status)
			assert.Equal(t, tt.caller.UserID, got.UserID)
			assert.True(t, tt.in.Amount.Equal(got.Amount))

			var details map[string]interface{}
			require.NoError(t, json.Unmarshal(got.PaymentDetails, &details))
			tt.check(t, details)
			require.Len(t, audit.events, 1)
			assert.Equal(t, model.AuditPaymentCreated, audit.events[0].Kind)
		})
	}
}

func TestCardValidator(t *testing.T) {
	v := NewCardValidator()
	v.now = func() time.Time { return time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC) }

	assert.NoError(t, v.ValidateCard("4242-4242-4242-4242", "05/26", "123"))
	assert.NoError(t, v.ValidateCard("4242424242424242", "01/30", "1234"))
	assert.ErrorIs(t, v.ValidateCard("4242424242424242", "04/26", "123"), apperr.ErrValidation)
	assert.ErrorIs(t, v.ValidateCard("4242424242424242", "13/26", "123"), apperr.ErrValidation)
	assert.ErrorIs(t, v.ValidateCard("4242424242424242", "05/26", "12"), apperr.ErrValidation)
	assert.ErrorIs(t, v.ValidateCard("4242abcd42424242", "05/26", "123"), apperr.ErrValidation)
	assert.ErrorIs(t, v.ValidateCard("4242", "05/26", "123"), apperr.ErrValidation)

	assert.Equal(t, "****4242", v.MaskCardNumber("4242 4242 4242 4242"))
	assert.Equal(t, "****", v.MaskCardNumber("42"))
}
