package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/errors"
)

// PaymentGateway charges a card at checkout. The stub implementation validates
// the card and approves every charge; swapping in a real gateway only requires
// another implementation of this interface.
type PaymentGateway interface {
	Charge(ctx context.Context, cardNumber, cardExpiry, cardCVV string, amount decimal.Decimal) error
}

// StubGateway validates card details locally and approves all valid charges.
type StubGateway struct{}

// NewStubGateway creates the local always-approve gateway.
func NewStubGateway() *StubGateway {
	return &StubGateway{}
}

// Charge validates the card and approves the charge.
func (g *StubGateway) Charge(ctx context.Context, cardNumber, cardExpiry, cardCVV string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.ErrPaymentDeclined
	}
	return g.validateCard(cardNumber, cardExpiry, cardCVV)
}

// validateCard validates card number, expiry, and CVV.
func (g *StubGateway) validateCard(cardNumber, expiry, cvv string) error {
	cardNumber = strings.ReplaceAll(strings.ReplaceAll(cardNumber, " ", ""), "-", "")

	if !validateLuhn(cardNumber) {
		return errors.ErrInvalidCard
	}

	expiryRegex := regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	if !expiryRegex.MatchString(expiry) {
		return errors.ErrInvalidCard
	}

	if !validateExpiry(expiry) {
		return errors.ErrInvalidCard
	}

	cvvRegex := regexp.MustCompile(`^\d{3,4}$`)
	if !cvvRegex.MatchString(cvv) {
		return errors.ErrInvalidCard
	}

	return nil
}

// validateLuhn validates a card number using the Luhn algorithm.
func validateLuhn(cardNumber string) bool {
	cardNumber = regexp.MustCompile(`\D`).ReplaceAllString(cardNumber, "")

	if len(cardNumber) < 13 || len(cardNumber) > 19 {
		return false
	}

	sum := 0
	isEven := false

	// Process from right to left
	for i := len(cardNumber) - 1; i >= 0; i-- {
		digit, err := strconv.Atoi(string(cardNumber[i]))
		if err != nil {
			return false
		}

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
func validateExpiry(expiry string) bool {
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

	now := time.Now()
	expiryDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	// Expiry should be at least the current month
	return expiryDate.After(now.AddDate(0, -1, 0))
}
