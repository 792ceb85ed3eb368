package validator

import (
	"reflect"
	"strings"

	"github.com/dmitrymomot/emailcheck/pkg/emailvalidator"
)

// Required fails when value is nil, a nil reference, a blank string or an
// empty slice or map.
func Required(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return !isBlank(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        ErrFieldRequired.Error(),
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// EmailFormat fails when value is not an acceptable email address.
func EmailFormat(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return emailvalidator.SafeValidate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// EmailDomain fails unless value is a valid address at exactly domain.
// Subdomains of domain are rejected.
func EmailDomain(field string, value any, domain string) Rule {
	return Rule{
		Check: func() bool {
			return emailvalidator.ValidateDomain(value, domain)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be an email address at " + domain,
			TranslationKey: "validation.email_domain",
			TranslationValues: map[string]any{
				"field":  field,
				"domain": domain,
			},
		},
	}
}

// EmailList fails when values is not a slice or array, or when any element
// is not a valid address. The number of rejected elements is reported as
// the "invalid" translation value.
func EmailList(field string, values any) Rule {
	total, ok := sequenceLen(values)
	invalid := total - len(emailvalidator.ValidateList(values))

	return Rule{
		Check: func() bool {
			return ok && invalid == 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a list of valid email addresses",
			TranslationKey: "validation.email_list",
			TranslationValues: map[string]any{
				"field":   field,
				"invalid": invalid,
			},
		},
	}
}

func sequenceLen(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return 0, false
	}
	return rv.Len(), true
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isBlank(rv.Elem().Interface())
	case reflect.Slice, reflect.Map:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
