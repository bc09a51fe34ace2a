package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrAllFieldsRequired       = errors.New("all fields are required")
	ErrInvalidEmail            = errors.New("email is malformed")
	ErrUsernameOrEmailRequired = errors.New("username or email is required")
	ErrPasswordRequired        = errors.New("password is required")
	ErrPasswordTooLong         = errors.New("password must not exceed 72 bytes")
	ErrPasswordsRequired       = errors.New("old and new password are required")
	ErrRefreshTokenRequired    = errors.New("refresh token is required")
)
