package catalog

import "errors"

var (
	ErrToolNotFound   = errors.New("tool not found")
	ErrMissingToolRef = errors.New("tool reference is required")

	ErrMissingName    = errors.New("tool name is required")
	ErrMissingPriceID = errors.New("tool price id is required")
	// ErrNumericName rejects names that would be read back as ids.
	ErrNumericName = errors.New("tool name must not be numeric")
)
