package emailvalidator

import (
	"reflect"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pattern is the address expression in its conventional notation. \s denotes
// the ECMAScript whitespace set, which is wider than the RE2 \s class.
const Pattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

const (
	// ECMAScript WhiteSpace and LineTerminator code points.
	whitespaceClass = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`
	segment         = `[^` + whitespaceClass + `@]+`
)

var emailRegex = regexp.MustCompile(`^` + segment + `@` + segment + `\.` + segment + `$`)

// Validate reports whether v, converted to text, matches Pattern.
// It returns ErrInvalidArgument when v is absent or not textual.
func Validate(v any) (bool, error) {
	s, err := textOf(v)
	if err != nil {
		return false, err
	}
	return emailRegex.MatchString(s), nil
}

// SafeValidate is Validate with errors reported as false.
func SafeValidate(v any) bool {
	ok, err := Validate(v)
	return err == nil && ok
}

// IsValid reports whether s is a syntactically acceptable address.
func IsValid(s string) bool {
	return SafeValidate(s)
}

// ValidateDomain reports whether v is a valid address whose text ends with
// "@"+domain, ignoring case. Subdomains do not match: "user@a.example.com"
// is not in "example.com".
func ValidateDomain(v any, domain string) bool {
	if !SafeValidate(v) {
		return false
	}

	s, _ := textOf(v)

	// Casers are stateful, so each call gets its own.
	lower := cases.Lower(language.Und)
	return strings.HasSuffix(lower.String(s), "@"+lower.String(domain))
}

// ValidateList returns the text of every element of v accepted by
// SafeValidate, in order. A v that is not a slice or array yields an empty,
// non-nil slice.
func ValidateList(v any) []string {
	result := make([]string, 0)
	if v == nil {
		return result
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return result
	}

	for i := range rv.Len() {
		item := rv.Index(i).Interface()
		if !SafeValidate(item) {
			continue
		}
		s, _ := textOf(item)
		result = append(result, s)
	}

	return result
}
