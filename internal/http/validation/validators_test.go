package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	v := Required("Full name", 100)
	assert.NotEmpty(t, v(""))
	assert.NotEmpty(t, v("   "))
	assert.Empty(t, v("Sam Coach"))
}

func TestEmail(t *testing.T) {
	v := Email("email")
	tests := []struct {
		value string
		ok    bool
	}{
		{"user@example.com", true},
		{"user.name+tag@sub.example.co", true},
		{"", true}, // emptiness is Required's concern
		{"not-an-email", false},
		{"missing@tld", false},
		{"two words@example.com", false},
		{"@example.com", false},
	}
	for _, tt := range tests {
		msg := v(tt.value)
		if tt.ok {
			assert.Empty(t, msg, "value %q", tt.value)
		} else {
			assert.NotEmpty(t, msg, "value %q", tt.value)
		}
	}
}

func TestPhone(t *testing.T) {
	v := Phone("phone", 10, 15)
	assert.Empty(t, v("0612345678"))
	assert.Empty(t, v("06 12 34 56 78")) // spaces are ignored
	assert.Empty(t, v("336123456789012"))
	assert.NotEmpty(t, v("061234567"))        // 9 digits
	assert.NotEmpty(t, v("0612345678901234")) // 16 digits
	assert.NotEmpty(t, v("06-12-34-56-78"))   // non-digit separators
	assert.Empty(t, v(""))
}

func TestMinLen(t *testing.T) {
	v := MinLen("password", 6)
	assert.NotEmpty(t, v("12345"))
	assert.Empty(t, v("123456"))
	assert.Empty(t, v(""))
}

func TestMatches(t *testing.T) {
	v := Matches("password confirmation", "secret123")
	assert.Empty(t, v("secret123"))
	assert.NotEmpty(t, v("secret124"))
}

func TestChecked(t *testing.T) {
	v := Checked("You must accept the terms.")
	assert.Empty(t, v("1"))
	assert.Empty(t, v("on"))
	assert.Empty(t, v("true"))
	assert.Equal(t, "You must accept the terms.", v(""))
	assert.Equal(t, "You must accept the terms.", v("0"))
}

func TestInteger(t *testing.T) {
	v := Integer("years of experience", 0, 60)
	assert.Empty(t, v("5"))
	assert.Empty(t, v(""))
	assert.NotEmpty(t, v("five"))
	assert.NotEmpty(t, v("-1"))
	assert.NotEmpty(t, v("61"))
}

func TestDate(t *testing.T) {
	v := Date("birth date")
	assert.Empty(t, v("2012-05-01"))
	assert.Empty(t, v(""))
	assert.NotEmpty(t, v("01/05/2012"))
	assert.NotEmpty(t, v("2012-5-1"))
}

func TestFieldValidator_StopsAtFirstErrorPerField(t *testing.T) {
	errs := New().
		Validate("email", "", Required("Email", 190), Email("email")).
		Validate("password", "123", Required("Password", 190), MinLen("password", 6)).
		Validate("phone", "0612345678", Required("Phone", 20), Phone("phone", 10, 15)).
		Errors()

	assert.Equal(t, "Email is required.", errs["email"])
	assert.Equal(t, "password must be at least 6 characters.", errs["password"])
	assert.NotContains(t, errs, "phone")
}
