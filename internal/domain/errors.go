package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound              = errors.New("resource not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrUsernameAlreadyExists = errors.New("username already registered")
	ErrUPCAlreadyExists      = errors.New("upc already registered")
	ErrInvalidInput          = errors.New("invalid input")
	ErrDuplicate             = errors.New("duplicate resource")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("access denied")
)
