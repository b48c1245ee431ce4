package catalog

import "errors"

// Sentinel error kinds for catalog validation.
var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInsufficientCategories is returned when a calculation needs at
	// least TeamSize distinct categories and the catalog has fewer.
	ErrInsufficientCategories = errors.New("not enough categories available")
)
