package domain

import "github.com/ghuser/wardrobe/pkg/apperr"

// Sentinel errors for the outfit context.
var (
	ErrInvalidDate   = apperr.Validation("invalid date")
	ErrInvalidRange  = apperr.Validation("invalid date range")
	ErrInvalidOutfit = apperr.Validation("invalid outfit")
	ErrInvalidWeek   = apperr.Validation("invalid week offset")
)
