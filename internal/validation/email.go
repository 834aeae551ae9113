package validation

import "net/mail"

// IsEmail reports whether s parses as a single RFC 5322 address.
func IsEmail(s string) bool {
	if len(s) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
