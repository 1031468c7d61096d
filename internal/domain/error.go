package domain

import "errors"

var (
	// Common domain errors
	ErrNotConfigured   = errors.New("gateway credentials not configured")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoPaymentLink   = errors.New("no payment link in gateway response")
	ErrMissingOrderID  = errors.New("missing order id")
)
