package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-account-keeper/models"
)

const (
	FieldFullName    = "full_name"
	FieldEmail       = "email"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldIdentity    = "identity"
	FieldOldPassword = "old_password"
	FieldNewPassword = "new_password"
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

type UserValidator struct {
}

// NewUserValidator returns a [Validator] for account inputs:
// [models.Registration], [models.Credentials] and [models.PasswordChange].
// Values are checked as given; trimming and lower-casing are the caller's
// concern, blank strings count as empty.
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		return v.validateRegistration(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(ctx, value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegistration(_ context.Context, reg models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldEmail, FieldUsername, FieldPassword}
	}

	// emptiness first: a missing field reports the same error whichever it is
	for _, f := range fields {
		var value string
		switch f {
		case FieldFullName:
			value = reg.FullName
		case FieldEmail:
			value = reg.Email
		case FieldUsername:
			value = reg.Username
		case FieldPassword:
			value = reg.Password
		default:
			return ErrUnknownField
		}
		if isBlank(value) {
			return ErrAllFieldsRequired
		}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(reg.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(reg.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		}
	}

	return nil
}

func (v *UserValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentity, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentity:
			if isBlank(creds.Username) && isBlank(creds.Email) {
				return ErrUsernameOrEmailRequired
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validatePasswordChange(_ context.Context, change models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldOldPassword:
			if change.OldPassword == "" {
				return ErrPasswordsRequired
			}
		case FieldNewPassword:
			if isBlank(change.NewPassword) {
				return ErrPasswordsRequired
			}
			if len(change.NewPassword) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isEmail accepts a bare address ("a@b.c"); display names are rejected.
func isEmail(s string) bool {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".")
}
