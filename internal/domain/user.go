package domain

import "strings"

// User is a registered account. The password is stored and compared as a
// plain string: this is a prototype-grade credential store, not a security
// mechanism.
type User struct {
	Password string `json:"password"`
}

// Profile holds the personal data captured at registration time. It is
// persisted independently of the User and may be absent for an account.
type Profile struct {
	FullName  string `json:"fullname"`
	Birthdate string `json:"birthdate"`
	Postal    string `json:"postal"`
	Address   string `json:"address"`
	DNI       string `json:"dni"`
	Phone     string `json:"phone"`
}

// NormalizeEmail trims and lowercases an email. The normalized form is the
// mapping key for users, profiles and the session marker.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ConfirmPassword checks the registration confirmation field and reports
// ErrPasswordMismatch when the two entries differ.
func ConfirmPassword(password, confirmation string) error {
	if password != confirmation {
		return ErrPasswordMismatch
	}
	return nil
}
