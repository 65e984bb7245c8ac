// Package validation holds the credential format rules shared by the
// registration and login paths.
package validation

import "regexp"

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[A-Za-z]{2,}$`)

// IsValidEmail reports whether s looks like local@domain.tld. The local part
// and domain accept ASCII word characters, dots and hyphens; the top-level
// segment needs at least two letters. Case is preserved, nothing is trimmed.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPassword reports whether s has at least one ASCII uppercase letter
// and at least one ASCII digit.
func IsValidPassword(s string) bool {
	var upper, digit bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
		if upper && digit {
			return true
		}
	}
	return false
}
