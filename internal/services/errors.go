package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrIncompleteForm  = errors.New("all order fields are required")
	ErrGatewayNotReady = errors.New("payment module is not ready yet, please retry shortly")
	ErrPaymentInFlight = errors.New("a payment attempt is already in progress")
)

// GatewayError is a failure reported by the payment gateway itself, as
// opposed to a transport failure reaching it.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment request failed: %s (%s)", e.Message, e.Code)
}
