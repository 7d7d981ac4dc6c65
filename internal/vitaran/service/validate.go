package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/vitaran/vitaran/pkg/cryptox"
)

// MinPasswordLength is counted in Unicode code points, not bytes. Browser
// checks count UTF-16 units instead, so a password of three emoji passes a
// JavaScript length check of 6 but is rejected here.
const MinPasswordLength = 6

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(normalized string) error {
	if !emailPattern.MatchString(normalized) {
		return ErrInvalidEmail
	}
	return nil
}

func validatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > cryptox.MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
