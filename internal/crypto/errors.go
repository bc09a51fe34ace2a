package crypto

import "errors"

var (
	// ErrPasswordTooLong is returned by Hash when the plaintext is longer
	// than 72 bytes, the bcrypt input limit.
	ErrPasswordTooLong = errors.New("password is too long")
	// ErrEmptyPassword is returned by Hash for an empty plaintext.
	ErrEmptyPassword = errors.New("password is empty")
)
