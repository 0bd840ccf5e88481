package handlers

import (
	"net/mail"
	"unicode/utf8"
)

// minPasswordLen is the minimum accepted login password length.
const minPasswordLen = 6

// validEmail reports whether s parses as a bare RFC 5322 address.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// validPassword reports whether the password meets the minimum length.
func validPassword(s string) bool {
	return utf8.RuneCountInString(s) >= minPasswordLen
}
