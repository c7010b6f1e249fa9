// Package validate holds the pure input predicates used by the auth
// workflows. They are advisory gates applied before persistence — the store
// enforces its own invariants (e.g. the unique email index) independently.
package validate

import (
	"regexp"
	"strings"
)

var (
	// Local part, "@", then either a dotted domain with a 2+ letter TLD or a
	// bracketed IPv4 literal. Quoted local parts are tolerated.
	emailRE = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|.(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}))$`)

	// Optional country code, optional (parenthesized) area code, separators
	// among space/dot/dash, 7–10 significant digits.
	phoneRE = regexp.MustCompile(`^(\+?\d{1,3}[-.\s]?)?(\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}$`)
)

// Email reports whether s looks like a deliverable email address.
func Email(s string) bool {
	return emailRE.MatchString(strings.ToLower(s))
}

// Phone reports whether s looks like a phone number.
func Phone(s string) bool {
	return phoneRE.MatchString(s)
}

// passwordSymbols is the only symbol set a password may (and must) draw from.
const passwordSymbols = "!@#$%^&*"

// Password reports whether s satisfies the password policy: 8–15 characters,
// at least one letter, one digit and one symbol from !@#$%^&*, and nothing
// outside those classes.
//
// RE2 has no lookahead, so the policy is checked procedurally rather than
// with the single regex earlier revisions used.
func Password(s string) bool {
	if len(s) < 8 || len(s) > 15 {
		return false
	}

	var hasLetter, hasDigit, hasSymbol bool
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, c):
			hasSymbol = true
		default:
			return false
		}
	}

	return hasLetter && hasDigit && hasSymbol
}
