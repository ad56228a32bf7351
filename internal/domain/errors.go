package domain

import "errors"

var (
	ErrCurrencyMismatch  = errors.New("currency mismatch")
	ErrInvalidProduct    = errors.New("invalid product")
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrder      = errors.New("invalid order")
	ErrUnsupportedMethod = errors.New("unsupported payment method")
)
