package payment

import "errors"

var (
	ErrValidation = errors.New("invalid input")

	ErrMemberNotFound = errors.New("member not found")
	ErrUnknownMethod  = errors.New("payment method not allowed")
)
