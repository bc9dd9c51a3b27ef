package billing

import "errors"

var (
	ErrInvalidKind           = errors.New("unknown payment method kind")
	ErrEmptyLabel            = errors.New("payment method label is required")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
)
