package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateAccount indicates a registration against an email that
	// already has an account.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrNoSuchAccount indicates a login against an unknown email.
	ErrNoSuchAccount = errors.New("no such account")
	// ErrWrongPassword indicates the stored password does not match.
	ErrWrongPassword = errors.New("wrong password")
	// ErrPasswordMismatch indicates the confirmation password differs.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
