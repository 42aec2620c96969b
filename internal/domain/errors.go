package domain

import "errors"

// ErrMalformedInput is returned when a pair file line does not hold exactly two fields.
// Use errors.Is to check for it.
var ErrMalformedInput = errors.New("malformed input")
