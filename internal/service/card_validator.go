package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "hhcc/internal/errors"
)

var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	nonDigits     = regexp.MustCompile(`\D`)
)

// CardValidator validates the card details entered in the payment wizard.
type CardValidator struct{}

// NewCardValidator creates a new card validator.
func NewCardValidator() *CardValidator {
	return &CardValidator{}
}

// ValidateCard validates card number, expiry (MM/YY), and CVV.
func (v *CardValidator) ValidateCard(cardNumber, expiry, cvv string) error {
	cardNumber = strings.ReplaceAll(strings.ReplaceAll(cardNumber, " ", ""), "-", "")

	if !v.validateLuhn(cardNumber) {
		return apperrors.ErrInvalidCard
	}
	if !expiryPattern.MatchString(expiry) {
		return apperrors.ErrInvalidCard
	}
	if !v.validateExpiry(expiry) {
		return apperrors.ErrInvalidCard
	}
	if !cvvPattern.MatchString(cvv) {
		return apperrors.ErrInvalidCard
	}
	return nil
}

// validateLuhn validates a card number using the Luhn algorithm.
func (v *CardValidator) validateLuhn(cardNumber string) bool {
	cardNumber = nonDigits.ReplaceAllString(cardNumber, "")

	if len(cardNumber) < 13 || len(cardNumber) > 19 {
		return false
	}

	sum := 0
	isEven := false
	for i := len(cardNumber) - 1; i >= 0; i-- {
		digit := int(cardNumber[i] - '0')
		if isEven {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		isEven = !isEven
	}
	return sum%10 == 0
}

// validateExpiry validates that the expiry date is not in the past.
func (v *CardValidator) validateExpiry(expiry string) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 {
		return false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	if year < 100 {
		year += 2000
	}

	expiryDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Valid through the end of the stated month.
	return expiryDate.After(time.Now().AddDate(0, -1, 0))
}

// MaskCardNumber masks a card number, showing only the last 4 digits.
func (v *CardValidator) MaskCardNumber(cardNumber string) string {
	cardNumber = strings.ReplaceAll(strings.ReplaceAll(cardNumber, " ", ""), "-", "")
	if len(cardNumber) < 4 {
		return "****"
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}
