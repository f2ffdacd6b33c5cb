package middleware

import (
	"errors"
)

var (
	errAuthHeaderRequired = errors.New("Authorization header is required")
	errAuthHeaderFormat   = errors.New("Invalid authorization format")
	errInvalidToken       = errors.New("Invalid token")
)
