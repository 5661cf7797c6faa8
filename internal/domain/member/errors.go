package member

import "errors"

var (
	ErrValidation = errors.New("invalid input")

	ErrMemberNotFound    = errors.New("member not found")
	ErrDuplicateMember   = errors.New("member with this email or phone already exists")
	ErrMemberHasPayments = errors.New("member has payment history and cannot be deleted")
)
