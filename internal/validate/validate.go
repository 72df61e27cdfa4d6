// Package validate holds the format predicates applied to customer and
// vendor records before they are written. They are advisory gates; values
// are not re-validated at read time.
package validate

import "regexp"

var (
	gstinRegex = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][A-Z0-9]Z[A-Z0-9]$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10,13}$`)
)

// IsGSTIN reports whether s is a well-formed 15-character Indian GSTIN.
func IsGSTIN(s string) bool {
	return gstinRegex.MatchString(s)
}

// IsEmail reports whether s looks like an email address. Intentionally
// permissive, not RFC-complete.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsPhone reports whether s is a 10-13 digit phone number.
func IsPhone(s string) bool {
	return phoneRegex.MatchString(s)
}
