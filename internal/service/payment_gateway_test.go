package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront/internal/errors"
)

func TestStubGateway_Charge(t *testing.T) {
	gateway := NewStubGateway()
	amount := decimal.NewFromFloat(54.48)

	tests := []struct {
		name          string
		cardNumber    string
		expiry        string
		cvv           string
		amount        decimal.Decimal
		expectedError error
	}{
		{
			name:       "valid visa",
			cardNumber: "4242424242424242",
			expiry:     "12/30",
			cvv:        "123",
			amount:     amount,
		},
		{
			name:       "spaces and dashes stripped",
			cardNumber: "4242-4242 4242-4242",
			expiry:     "12/30",
			cvv:        "1234",
			amount:     amount,
		},
		{
			name:          "luhn check fails",
			cardNumber:    "4242424242424241",
			expiry:        "12/30",
			cvv:           "123",
			amount:        amount,
			expectedError: errors.ErrInvalidCard,
		},
		{
			name:          "card number too short",
			cardNumber:    "42424242",
			expiry:        "12/30",
			cvv:           "123",
			amount:        amount,
			expectedError: errors.ErrInvalidCard,
		},
		{
			name:          "malformed expiry",
			cardNumber:    "4242424242424242",
			expiry:        "13/30",
			cvv:           "123",
			amount:        amount,
			expectedError: errors.ErrInvalidCard,
		},
		{
			name:          "expired card",
			cardNumber:    "4242424242424242",
			expiry:        "01/20",
			cvv:           "123",
			amount:        amount,
			expectedError: errors.ErrInvalidCard,
		},
		{
			name:          "bad cvv",
			cardNumber:    "4242424242424242",
			expiry:        "12/30",
			cvv:           "12",
			amount:        amount,
			expectedError: errors.ErrInvalidCard,
		},
		{
			name:          "zero amount declined",
			cardNumber:    "4242424242424242",
			expiry:        "12/30",
			cvv:           "123",
			amount:        decimal.Zero,
			expectedError: errors.ErrPaymentDeclined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gateway.Charge(context.Background(), tt.cardNumber, tt.expiry, tt.cvv, tt.amount)
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
