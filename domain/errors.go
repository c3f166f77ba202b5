package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateDonor = errors.New("a donor with this phone already exists in this district")
	ErrDonorNotFound  = errors.New("donor not found")
	ErrDeliveryFailed = errors.New("sms relay failed")
)

// Invalid wraps ErrInvalidInput with a caller-facing reason.
func Invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}

// DeliveryError wraps a provider failure so handlers can surface the
// provider detail alongside the 502.
func DeliveryError(cause error) error {
	return fmt.Errorf("%w: %v", ErrDeliveryFailed, cause)
}
