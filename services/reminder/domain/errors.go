package domain

import "github.com/ghuser/wardrobe/pkg/apperr"

// Sentinel errors for the reminder context.
var (
	ErrNoEmail        = apperr.Validation("user has no email address")
	ErrCityNotFound   = apperr.NotFound("city not found")
	ErrInvalidRequest = apperr.Validation("invalid reminder request")
)
