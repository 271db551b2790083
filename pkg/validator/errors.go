package validator

import "errors"

// ErrInvalidTarget is returned when the validated value is not a struct.
var ErrInvalidTarget = errors.New("validator: target must be a struct")
