package emailvalidator

import (
	"fmt"
	"reflect"
	"strconv"
)

// textOf converts v to the string that is matched against the pattern.
func textOf(v any) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%w: value is nil", ErrInvalidArgument)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", fmt.Errorf("%w: value is nil", ErrInvalidArgument)
		}
		// Named types with their own String/Error win over dereferencing.
		if s, ok := stringerText(rv); ok {
			return s, nil
		}
		rv = rv.Elem()
	}

	if s, ok := stringerText(rv); ok {
		return s, nil
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Slice:
		if rv.IsNil() {
			return "", fmt.Errorf("%w: value is nil", ErrInvalidArgument)
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), nil
		}
	case reflect.Map, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return "", fmt.Errorf("%w: value is nil", ErrInvalidArgument)
		}
	}

	return "", fmt.Errorf("%w: %s has no textual form", ErrInvalidArgument, rv.Type())
}

func stringerText(rv reflect.Value) (string, bool) {
	if !rv.CanInterface() {
		return "", false
	}
	switch x := rv.Interface().(type) {
	case fmt.Stringer:
		return x.String(), true
	case error:
		return x.Error(), true
	}
	return "", false
}
