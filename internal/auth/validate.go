package auth

import (
	"regexp"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail is a syntactic check only: local part, "@", and a domain
// containing a dot.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

const minPasswordLength = 6

type PasswordCheck struct {
	Valid  bool
	Reason string
}

// ValidatePassword applies the password policy. Rules are checked in order
// (length, lowercase, uppercase, digit) and the first failure is reported.
// Length counts characters, not bytes.
func ValidatePassword(password string) PasswordCheck {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return PasswordCheck{Reason: "Password must be at least 6 characters long"}
	}

	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}

	switch {
	case !lower:
		return PasswordCheck{Reason: "Password must contain at least one lowercase letter"}
	case !upper:
		return PasswordCheck{Reason: "Password must contain at least one uppercase letter"}
	case !digit:
		return PasswordCheck{Reason: "Password must contain at least one number"}
	}
	return PasswordCheck{Valid: true}
}
