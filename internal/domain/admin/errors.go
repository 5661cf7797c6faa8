package admin

import "errors"

var (
	ErrValidation = errors.New("invalid input")

	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminExists        = errors.New("admin already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
