package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	apperr "eduai/internal/errors"
)

var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	nonDigit      = regexp.MustCompile(`\D`)
)

// CardValidator checks card details attached to a card payment intent.
type CardValidator struct {
	now func() time.Time
}

// NewCardValidator creates a new card validator.
func NewCardValidator() *CardValidator {
	return &CardValidator{now: time.Now}
}

// ValidateCard validates card number, expiry (MM/YY) and CVV.
func (v *CardValidator) ValidateCard(cardNumber, expiry, cvv string) error {
	if !v.validLuhn(normalizeCardNumber(cardNumber)) {
		return apperr.Validation("invalid card number")
	}
	if !expiryPattern.MatchString(expiry) || !v.validExpiry(expiry) {
		return apperr.Validation("invalid or expired card expiry")
	}
	if !cvvPattern.MatchString(cvv) {
		return apperr.Validation("invalid card cvv")
	}
	return nil
}

func (v *CardValidator) validLuhn(cardNumber string) bool {
	if nonDigit.MatchString(cardNumber) || len(cardNumber) < 13 || len(cardNumber) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(cardNumber) - 1; i >= 0; i-- {
		digit := int(cardNumber[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// validExpiry accepts cards that expire this month or later.
func (v *CardValidator) validExpiry(expiry string) bool {
	month, err := strconv.Atoi(expiry[:2])
	if err != nil {
		return false
	}
	year, err := strconv.Atoi(expiry[3:])
	if err != nil {
		return false
	}

	now := v.now().UTC()
	endOfMonth := time.Date(2000+year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return now.Before(endOfMonth)
}

// MaskCardNumber masks a card number, showing only last 4 digits.
func (v *CardValidator) MaskCardNumber(cardNumber string) string {
	cardNumber = normalizeCardNumber(cardNumber)
	if len(cardNumber) < 4 {
		return "****"
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}

func normalizeCardNumber(n string) string {
	return strings.ReplaceAll(strings.ReplaceAll(n, " ", ""), "-", "")
}
