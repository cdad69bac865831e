package order

import "errors"

var (
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
	ErrInvalidAmount   = errors.New("invalid currency amount")
	ErrInvalidStatus   = errors.New("unknown order status")
	ErrMissingField    = errors.New("required field is missing")
	ErrOrderMismatch   = errors.New("item does not belong to order")
)
