package cli

import "errors"

var (
	// ErrInvalidAddresses is returned when at least one checked address fails.
	ErrInvalidAddresses = errors.New("one or more addresses are invalid")

	// ErrMissingDomain is returned by the domain command without a domain.
	ErrMissingDomain = errors.New("domain is required: pass --domain or set EMAILCHECK_DOMAIN")

	// ErrUnknownOutput is returned for an unsupported --output value.
	ErrUnknownOutput = errors.New("unknown output format")

	// ErrUnknownInput is returned for an unsupported --input value.
	ErrUnknownInput = errors.New("unknown input format")

	// ErrReadInput wraps failures to open, read or decode the filter input.
	ErrReadInput = errors.New("failed to read input")
)
