// Package emailvalidator checks email-address strings against a single,
// deliberately permissive regular expression and offers helpers for exact
// domain matching and batch filtering.
//
// The check is syntactic only. An address is accepted when it has the shape
//
//	local@host.tld
//
// where each of the three parts is one or more characters that are neither
// whitespace nor '@'. The expression accepts strings that RFC 5322 rejects
// (for example "a..b@c..d") and rejects some it allows (quoted local parts
// containing spaces). That behaviour is part of the package contract.
//
// # Functions
//
// The four entry points form a strict call chain:
//
//   - Validate       – the format check; returns ErrInvalidArgument for absent input
//   - SafeValidate   – Validate with any error reported as false
//   - ValidateDomain – SafeValidate plus a case-insensitive "@domain" suffix test
//   - ValidateList   – SafeValidate applied to every element of a slice or array
//
// IsValid is a typed shortcut for callers that already hold a string.
//
// # Input values
//
// Validate accepts any value. Strings, byte slices, fmt.Stringer and error
// values, booleans and numbers are converted to text. Pointers to those are
// dereferenced. Untyped nil, nil pointers and other nil references are
// absent, and any other value is non-textual. Both are rejected with
// ErrInvalidArgument.
//
// # Domain matching
//
// ValidateDomain compares suffixes, not domain hierarchies:
//
//	emailvalidator.ValidateDomain("user@example.com", "example.com")     // true
//	emailvalidator.ValidateDomain("USER@EXAMPLE.COM", "example.com")     // true
//	emailvalidator.ValidateDomain("user@sub.example.com", "example.com") // false
//
// # Concurrency
//
// All functions are pure and hold no shared mutable state; they are safe for
// concurrent use.
package emailvalidator
