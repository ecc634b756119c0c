package domain

import "github.com/ghuser/wardrobe/pkg/apperr"

// Sentinel errors for the catalog context. Use errors.Is() to check these.
var (
	// ErrClothingNotFound covers both absent ids and ids owned by someone else.
	ErrClothingNotFound = apperr.NotFound("clothing item not found")

	ErrInvalidClothing = apperr.Validation("invalid clothing item")
	ErrInvalidFilter   = apperr.Validation("invalid clothing filter")
)
