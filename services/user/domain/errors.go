package domain

import "github.com/ghuser/wardrobe/pkg/apperr"

// Sentinel errors for the user context.
var (
	ErrUserNotFound       = apperr.NotFound("user not found")
	ErrUsernameTaken      = apperr.Conflict("username already taken")
	ErrInvalidUser        = apperr.Validation("invalid user")
	ErrInvalidCredentials = apperr.Unauthorized("invalid username or password")
)
