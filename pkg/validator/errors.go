package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is the message of a failed Required rule.
	ErrFieldRequired = errors.New("field is required")
)
