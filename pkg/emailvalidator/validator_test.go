package emailvalidator_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emailcheck/pkg/emailvalidator"
)

type address string

type contact struct{ local, host string }

func (c contact) String() string { return c.local + "@" + c.host }

type ptrContact struct{ addr string }

func (c *ptrContact) String() string { return c.addr }

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts address shaped strings", func(t *testing.T) {
		t.Parallel()
		valid := []string{
			"user@example.com",
			"test@domain.org",
			"user.name+tag@sub.domain.co.uk",
			"a@b.c",
			"a..b@c..d.e",
			"1234567890@example.com",
			"ünïcödé@exämple.de",
			"user@127.0.0.1",
			"x@y.z.",
			"weird!#$%&'*/=?^`{|}~@host.tld",
		}
		for _, email := range valid {
			ok, err := emailvalidator.Validate(email)
			require.NoError(t, err, email)
			assert.True(t, ok, "should be valid: %q", email)
		}
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		t.Parallel()
		invalid := []string{
			"",
			"invalid-email",
			"bad@",
			"@example.com",
			"user@example",
			"user@.com",
			"user@example.",
			"user@@example.com",
			"user@exa@mple.com",
			"us er@example.com",
			"user@example .com",
			" user@example.com",
			"user@example.com ",
			"user@example.com\n",
			"user\t@example.com",
			"user\v@example.com",
			"user\u00a0@example.com",
			"user@example\u2028.com",
			"user@example.com\ufeff",
			"user@exa\u3000mple.com",
			`"quoted local"@example.com`,
		}
		for _, email := range invalid {
			ok, err := emailvalidator.Validate(email)
			require.NoError(t, err, email)
			assert.False(t, ok, "should be invalid: %q", email)
		}
	})

	t.Run("absent values return ErrInvalidArgument", func(t *testing.T) {
		t.Parallel()
		var nilString *string
		var nilSlice []byte
		var nilMap map[string]string
		var nilStringer fmt.Stringer
		var nilPtrStringer *ptrContact

		absent := []any{nil, nilString, nilSlice, nilMap, nilStringer, nilPtrStringer}
		for _, v := range absent {
			ok, err := emailvalidator.Validate(v)
			require.Error(t, err, "%#v", v)
			assert.ErrorIs(t, err, emailvalidator.ErrInvalidArgument)
			assert.False(t, ok)
		}
	})

	t.Run("non-textual values return ErrInvalidArgument", func(t *testing.T) {
		t.Parallel()
		values := []any{
			struct{ A string }{"user@example.com"},
			[]string{"user@example.com"},
			map[string]string{"a": "user@example.com"},
			func() {},
			make(chan int),
			complex(1, 2),
		}
		for _, v := range values {
			_, err := emailvalidator.Validate(v)
			assert.ErrorIs(t, err, emailvalidator.ErrInvalidArgument, "%T", v)
		}
	})

	t.Run("coerces textual values", func(t *testing.T) {
		t.Parallel()
		s := "user@example.com"
		pp := &s

		cases := []struct {
			name string
			in   any
			want bool
		}{
			{"named string", address("user@example.com"), true},
			{"byte slice", []byte("user@example.com"), true},
			{"pointer to string", &s, true},
			{"pointer to pointer", &pp, true},
			{"value stringer", contact{"user", "example.com"}, true},
			{"pointer stringer", &ptrContact{"user@example.com"}, true},
			{"error", errors.New("user@example.com"), true},
			{"int", 42, false},
			{"float", 3.14, false},
			{"bool", true, false},
			{"uint", uint8(7), false},
		}
		for _, tc := range cases {
			ok, err := emailvalidator.Validate(tc.in)
			require.NoError(t, err, tc.name)
			assert.Equal(t, tc.want, ok, tc.name)
		}
	})
}

func TestSafeValidate(t *testing.T) {
	t.Parallel()

	assert.True(t, emailvalidator.SafeValidate("user@example.com"))
	assert.False(t, emailvalidator.SafeValidate("invalid-email"))
	assert.False(t, emailvalidator.SafeValidate("bad@"))
	assert.False(t, emailvalidator.SafeValidate(nil))
	assert.False(t, emailvalidator.SafeValidate((*string)(nil)))
	assert.False(t, emailvalidator.SafeValidate(struct{}{}))

	assert.NotPanics(t, func() {
		emailvalidator.SafeValidate(make(chan struct{}))
	})
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, emailvalidator.IsValid("user@example.com"))
	assert.False(t, emailvalidator.IsValid("user@example"))
	assert.False(t, emailvalidator.IsValid(""))
}

func TestValidateDomain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		email  any
		domain string
		want   bool
	}{
		{"exact match", "user@example.com", "example.com", true},
		{"different domain", "user@test.org", "example.com", false},
		{"invalid address", "invalid-email", "example.com", false},
		{"subdomain is not a match", "user@subdomain.example.com", "example.com", false},
		{"upper case address", "USER@EXAMPLE.COM", "example.com", true},
		{"upper case domain", "user@example.com", "EXAMPLE.COM", true},
		{"mixed case both", "UsEr@ExAmPlE.cOm", "eXaMpLe.CoM", true},
		{"suffix without at sign", "user@myexample.com", "example.com", false},
		{"nil address", nil, "example.com", false},
		{"empty domain", "user@example.com", "", false},
		{"domain with at sign", "user@example.com", "@example.com", false},
		{"unicode case folding", "user@ÄPFEL.DE", "äpfel.de", true},
		{"stringer address", contact{"user", "Example.com"}, "example.com", true},
		{"partial tld", "user@example.co", "example.com", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, emailvalidator.ValidateDomain(tc.email, tc.domain))
		})
	}
}

func TestValidateList(t *testing.T) {
	t.Parallel()

	t.Run("filters and preserves order", func(t *testing.T) {
		t.Parallel()
		emails := []string{"user@example.com", "invalid-email", "test@domain.org", "bad@"}
		assert.Equal(t, []string{"user@example.com", "test@domain.org"}, emailvalidator.ValidateList(emails))
	})

	t.Run("does not modify input", func(t *testing.T) {
		t.Parallel()
		emails := []string{"bad@", "user@example.com"}
		_ = emailvalidator.ValidateList(emails)
		assert.Equal(t, []string{"bad@", "user@example.com"}, emails)
	})

	t.Run("mixed element types", func(t *testing.T) {
		t.Parallel()
		items := []any{nil, "b@c.d", 42, address("e@f.g"), []byte("h@i.j"), struct{}{}, "nope"}
		assert.Equal(t, []string{"b@c.d", "e@f.g", "h@i.j"}, emailvalidator.ValidateList(items))
	})

	t.Run("arrays are sequences", func(t *testing.T) {
		t.Parallel()
		arr := [3]string{"a@b.c", "x", "d@e.f"}
		assert.Equal(t, []string{"a@b.c", "d@e.f"}, emailvalidator.ValidateList(arr))
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		t.Parallel()
		emails := []string{"a@b.c", "a@b.c"}
		assert.Equal(t, []string{"a@b.c", "a@b.c"}, emailvalidator.ValidateList(emails))
	})

	t.Run("non-sequence input yields empty slice", func(t *testing.T) {
		t.Parallel()
		for _, v := range []any{nil, 42, "user@example.com", map[string]string{"a": "b@c.d"}, struct{}{}} {
			got := emailvalidator.ValidateList(v)
			require.NotNil(t, got, "%#v", v)
			assert.Empty(t, got, "%#v", v)
		}
	})

	t.Run("empty and nil slices", func(t *testing.T) {
		t.Parallel()
		var nilSlice []string
		got := emailvalidator.ValidateList(nilSlice)
		require.NotNil(t, got)
		assert.Empty(t, got)

		got = emailvalidator.ValidateList([]string{})
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("USER%d@Example.com", i)
			assert.True(t, emailvalidator.SafeValidate(email))
			assert.True(t, emailvalidator.ValidateDomain(email, "example.com"))
			assert.Len(t, emailvalidator.ValidateList([]string{email, "bad@"}), 1)
		}(i)
	}
	wg.Wait()
}
