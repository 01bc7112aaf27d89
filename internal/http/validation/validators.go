// Package validation provides reusable field validators for HTML form input.
// All checks run before anything is sent to the club API, so a form with an
// obviously bad value never costs a network round trip.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validator is a function that validates a string value and returns an error message if invalid.
type Validator func(v string) string

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required validates that a field is not empty and does not exceed maxLen characters.
// Uses rune count for proper Unicode support.
func Required(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// Optional validates that an optional field does not exceed maxLen characters if provided.
func Optional(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// Email validates that a field looks like an email address.
func Email(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if !emailPattern.MatchString(v) {
			return "Enter a valid " + fieldName + "."
		}
		return ""
	}
}

// Phone validates that a field is a phone number of minDigits to maxDigits
// digits. Spaces are ignored, so "06 12 34 56 78" passes.
func Phone(fieldName string, minDigits, maxDigits int) Validator {
	return func(v string) string {
		v = strings.ReplaceAll(strings.TrimSpace(v), " ", "")
		if v == "" {
			return ""
		}
		for _, r := range v {
			if r < '0' || r > '9' {
				return fieldName + " may only contain digits and spaces."
			}
		}
		if n := len(v); n < minDigits || n > maxDigits {
			return fmt.Sprintf("%s must be between %d and %d digits.", fieldName, minDigits, maxDigits)
		}
		return ""
	}
}

// MinLen validates that a field has at least minLen characters.
func MinLen(fieldName string, minLen int) Validator {
	return func(v string) string {
		if v == "" {
			return ""
		}
		if utf8.RuneCountInString(v) < minLen {
			return fmt.Sprintf("%s must be at least %d characters.", fieldName, minLen)
		}
		return ""
	}
}

// Matches validates that a field equals the other value, for password
// confirmation fields.
func Matches(fieldName, other string) Validator {
	return func(v string) string {
		if v != other {
			return fieldName + " does not match."
		}
		return ""
	}
}

// Checked validates that a checkbox field was ticked.
func Checked(message string) Validator {
	return func(v string) string {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "on", "yes":
			return ""
		default:
			return message
		}
	}
}

// Integer validates that a field is a whole number between minVal and maxVal.
func Integer(fieldName string, minVal, maxVal int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return fieldName + " must be a number."
		}
		if i < minVal || i > maxVal {
			return fmt.Sprintf("%s must be between %d and %d.", fieldName, minVal, maxVal)
		}
		return ""
	}
}

// OneOf validates that a field matches one of the provided options (case-insensitive).
func OneOf(fieldName string, options []string) Validator {
	return func(v string) string {
		v = strings.ToUpper(strings.TrimSpace(v))
		for _, opt := range options {
			if v == strings.ToUpper(opt) {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.Join(options, ", "))
	}
}

// Date validates a YYYY-MM-DD formatted field.
func Date(fieldName string) Validator {
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if !re.MatchString(v) {
			return fieldName + " must use the YYYY-MM-DD format."
		}
		return ""
	}
}

// FieldValidator provides a fluent API for validating multiple fields.
type FieldValidator struct {
	errors map[string]string
}

// New creates a new FieldValidator instance.
func New() *FieldValidator {
	return &FieldValidator{errors: make(map[string]string)}
}

// Validate validates a field with one or more validators.
// It stops at the first error for each field.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	for _, v := range validators {
		if err := v(value); err != "" {
			fv.errors[field] = err
			break // Stop at first error per field
		}
	}
	return fv
}

// Errors returns the accumulated validation errors.
func (fv *FieldValidator) Errors() map[string]string {
	return fv.errors
}
