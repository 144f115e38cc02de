package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrCartItemNotFound is returned when a cart row does not belong to the caller.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrInvalidQuantity is returned when a cart quantity is below one.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrEmptyCart is returned when checkout is attempted with no cart rows.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidCard is returned when card validation fails.
	ErrInvalidCard = errors.New("invalid card")
	// ErrPaymentDeclined is returned when the payment gateway declines a charge.
	ErrPaymentDeclined = errors.New("payment declined")
	// ErrInvalidOrderStatus is returned for unknown order status transitions.
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrProductNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case ErrOrderNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrCartItemNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CART_ITEM_NOT_FOUND")
	case ErrInvalidQuantity:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	case ErrEmptyCart:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_CART")
	case ErrInvalidCard:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CARD")
	case ErrPaymentDeclined:
		return NewHTTPError(http.StatusPaymentRequired, err.Error(), "PAYMENT_DECLINED")
	case ErrInvalidOrderStatus:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ORDER_STATUS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
