package order

import "errors"

var (
	ErrMissingCustomerName = errors.New("customer name is required")
	ErrMissingPhone        = errors.New("phone number is required")
	ErrNoFiles             = errors.New("at least one file is required")
	ErrInvalidCopies       = errors.New("copy count must be at least 1")
	ErrInvalidColorMode    = errors.New("invalid color mode")
	ErrFileTooLarge        = errors.New("file exceeds size limit")
	ErrFileTypeNotAllowed  = errors.New("file type not allowed")
	ErrInvalidStatus       = errors.New("invalid order status")

	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
)
