package emailvalidator

import "errors"

// ErrInvalidArgument is returned by Validate when the input is absent (nil)
// or has no textual representation.
var ErrInvalidArgument = errors.New("emailvalidator: invalid argument")
