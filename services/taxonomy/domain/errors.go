package domain

import "github.com/ghuser/wardrobe/pkg/apperr"

// Sentinel errors for the taxonomy context. Each also matches its apperr kind.
var (
	ErrInvalidCategoryKey  = apperr.Validation("invalid category key")
	ErrInvalidOption       = apperr.Validation("invalid option value")
	ErrOptionAlreadyExists = apperr.Conflict("option already exists")

	ErrInvalidLocation       = apperr.Validation("invalid location")
	ErrLocationAlreadyExists = apperr.Conflict("location already exists")
)
