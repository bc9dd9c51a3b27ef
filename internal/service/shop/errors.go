package shop

import "errors"

var (
	ErrEmptyCode             = errors.New("empty shop code")
	ErrInvalidCode           = errors.New("invalid shop code")
	ErrInvalidName           = errors.New("invalid shop name")
	ErrInvalidRate           = errors.New("invalid rate")
	ErrInvalidRetention      = errors.New("invalid retention period")
	ErrMissingRequiredFields = errors.New("missing required fields")

	ErrShopNotFound = errors.New("shop not found")
	ErrConflict     = errors.New("shop code already exists")
)
