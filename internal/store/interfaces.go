package store

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the credential store: durable persistence of user
// records keyed by UserID, with unique Username and Email.
type UserRepository interface {
	// CreateUser inserts a new record. A duplicate username or email yields
	// ErrUserAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsernameOrEmail returns the record whose username equals
	// username OR whose email equals email. Empty arguments are ignored.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error)

	// FindUserByID returns the record with the given id.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateUser writes the non-nil fields of patch and returns the record
	// as stored afterwards.
	UpdateUser(ctx context.Context, patch models.UserPatch) (models.User, error)

	// DeleteUser removes the record and returns it as it was.
	DeleteUser(ctx context.Context, userID string) (models.User, error)

	// SwapRefreshToken replaces the stored refresh token only when it still
	// equals expected. Otherwise ErrRefreshTokenMismatch is returned.
	SwapRefreshToken(ctx context.Context, userID, expected, replacement string) error
}

// PasswordHashChecker recognises password hashes. Writes carrying a value
// it rejects are refused with ErrPasswordNotHashed.
type PasswordHashChecker interface {
	IsPasswordHash(value string) bool
}
