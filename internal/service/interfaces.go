// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the account logic: registration, login,
// logout, token refresh, password change, account deletion and profile
// image replacement, plus the access-token check used by the transports.
//
// Services depend only on interfaces from the store, crypto and adapter
// packages. Every returned error wraps one of the kinds in errors.go.
package service

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns the session lifecycle of an account.
type AuthService interface {
	// RegisterUser creates an account and returns it sanitized.
	RegisterUser(ctx context.Context, registration models.Registration) (models.User, error)

	// Login verifies credentials and opens a session.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Logout clears the stored refresh token. Idempotent.
	Logout(ctx context.Context, userID string) error

	// RefreshSession rotates the refresh token and issues a new pair.
	RefreshSession(ctx context.Context, rawRefreshToken string) (models.Session, error)

	// ChangeCurrentPassword replaces the password after checking the old one.
	ChangeCurrentPassword(ctx context.Context, userID string, change models.PasswordChange) error

	// Authorize resolves an access token to the sanitized user it belongs to.
	Authorize(ctx context.Context, rawCredential string) (models.User, error)
}

// AccountService manages an authenticated user's profile.
type AccountService interface {
	GetCurrentUser(ctx context.Context, userID string) (models.User, error)
	DeleteAccount(ctx context.Context, userID string) (models.AccountDeletion, error)
	ChangeAvatar(ctx context.Context, userID, localPath string) (models.ImageSwap, error)
	ChangeCoverImage(ctx context.Context, userID, localPath string) (models.ImageSwap, error)
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	IssueAccessToken(ctx context.Context, user models.User) (models.Token, error)
	IssueRefreshToken(ctx context.Context, userID string) (models.Token, error)

	// Verify checks signature, issuer, algorithm, expiry and subject. It
	// does no business checks.
	Verify(ctx context.Context, token string, kind models.TokenKind) (models.TokenClaims, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
