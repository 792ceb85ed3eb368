package logger

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", keyed by position.
// It returns an empty Attr when every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RunID records the identifier of one command invocation under "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Domain records the domain an address is matched against.
func Domain(domain string) slog.Attr {
	return slog.String("domain", domain)
}

// Email records addr with its local part masked, e.g. "u***@example.com".
func Email(addr string) slog.Attr {
	return slog.String("email", MaskEmail(addr))
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

func Valid(n int) slog.Attr {
	return slog.Int("valid", n)
}

func Invalid(n int) slog.Attr {
	return slog.Int("invalid", n)
}

// MaskEmail keeps the first character of the local part and everything from
// the last '@' on. Strings without a local part are fully masked.
func MaskEmail(addr string) string {
	at := strings.LastIndexByte(addr, '@')
	if at <= 0 {
		return "***"
	}
	r, _ := utf8.DecodeRuneInString(addr)
	return string(r) + "***" + addr[at:]
}
