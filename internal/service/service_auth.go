package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/crypto"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials with a PasswordHasher, mints tokens with a
// TokenService and keeps the single live refresh token of every user in
// the UserRepository.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher crypto.PasswordHasher
	tokens TokenService

	// images receives the profile pictures sent with a registration.
	images adapter.ImageHost
	events adapter.EventPublisher

	newID func() string
	now   func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService from its collaborators.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokens TokenService,
	images adapter.ImageHost,
	events adapter.EventPublisher,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		images:         images,
		events:         events,
		newID:          utils.NewUUIDGenerator().Generate,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// Username and email are trimmed and lower-cased. The existence check runs
// before any upload so that a duplicate never costs an image host call.
// Images uploaded for a registration that then fails are deleted again.
//
// Returns the sanitized record or:
//   - ErrUserAlreadyExists if username or email is taken;
//   - ErrAvatarRequired if no avatar file was sent;
//   - ErrAvatarUpload / ErrCoverImageUpload if the image host fails.
func (a *authService) RegisterUser(ctx context.Context, reg models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	reg.FullName = strings.TrimSpace(reg.FullName)
	reg.Username = normalizeIdentity(reg.Username)
	reg.Email = normalizeIdentity(reg.Email)

	_, err := a.userRepository.FindUserByUsernameOrEmail(ctx, reg.Username, reg.Email)
	switch {
	case err == nil:
		log.Info().Str("username", reg.Username).Msg("registration rejected: user already exists")
		return models.User{}, ErrUserAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("existing user check failed")
		return models.User{}, fmt.Errorf("existing user check failed: %w", err)
	}

	if reg.AvatarPath == "" {
		return models.User{}, ErrAvatarRequired
	}

	passwordHash, err := a.hasher.Hash(reg.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) || errors.Is(err, crypto.ErrEmptyPassword) {
			return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	avatar, err := a.images.Upload(ctx, reg.AvatarPath)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("avatar upload failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrAvatarUpload, err)
	}

	var cover models.Image
	if reg.CoverImagePath != "" {
		cover, err = a.images.Upload(ctx, reg.CoverImagePath)
		if err != nil {
			log.Err(err).Str("func", "*authService.RegisterUser").Msg("cover image upload failed")
			deleteImagesBestEffort(ctx, a.images, avatar)
			return models.User{}, fmt.Errorf("%w: %w", ErrCoverImageUpload, err)
		}
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:       a.newID(),
		Username:     reg.Username,
		Email:        reg.Email,
		FullName:     reg.FullName,
		PasswordHash: passwordHash,
		Avatar:       avatar,
		CoverImage:   cover,
		CreatedAt:    a.now().UTC(),
	})
	if err != nil {
		deleteImagesBestEffort(ctx, a.images, avatar, cover)
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	publishEvent(ctx, a.events, models.EventUserRegistered, created, a.now())

	return created.Sanitized(), nil
}

// Login authenticates an existing user and opens a session.
//
// An unknown account and a wrong password are indistinguishable from the
// outside: both return ErrInvalidCredentials, and the unknown-account
// branch still spends one bcrypt comparison.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	username := normalizeIdentity(creds.Username)
	email := normalizeIdentity(creds.Email)

	user, err := a.userRepository.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.hasher.VerifyDummy(creds.Password)
			log.Info().Err(errUserNotFound).Str("username", username).Str("email", email).Msg("login failed")
			return models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search failed")
		return models.Session{}, fmt.Errorf("user search failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, user.PasswordHash) {
		log.Info().Err(errWrongPassword).Str("user_id", user.UserID).Msg("login failed")
		return models.Session{}, ErrInvalidCredentials
	}

	access, refresh, err := a.issuePair(ctx, user)
	if err != nil {
		return models.Session{}, err
	}

	// last writer wins: a second login replaces the first session
	token := refresh.String()
	updated, err := a.userRepository.UpdateUser(ctx, models.UserPatch{UserID: user.UserID, RefreshToken: &token})
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("refresh token was not stored")
		return models.Session{}, fmt.Errorf("refresh token was not stored: %w", err)
	}

	publishEvent(ctx, a.events, models.EventUserLoggedIn, updated, a.now())

	return models.Session{
		User:         updated.Sanitized(),
		AccessToken:  access.String(),
		RefreshToken: refresh.String(),
	}, nil
}

// Logout clears the stored refresh token. Calling it for a user that is
// already logged out, or that no longer exists, is not an error.
// Access tokens already issued stay valid until they expire.
func (a *authService) Logout(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	empty := ""
	updated, err := a.userRepository.UpdateUser(ctx, models.UserPatch{UserID: userID, RefreshToken: &empty})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil
		}
		log.Err(err).Str("func", "*authService.Logout").Str("user_id", userID).Msg("refresh token was not cleared")
		return fmt.Errorf("refresh token was not cleared: %w", err)
	}

	publishEvent(ctx, a.events, models.EventUserLoggedOut, updated, a.now())

	return nil
}

// RefreshSession exchanges a valid refresh token for a new token pair.
// The stored token is replaced with compare-and-swap, so of two concurrent
// refreshes with the same token only one succeeds.
func (a *authService) RefreshSession(ctx context.Context, rawRefreshToken string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if rawRefreshToken == "" {
		return models.Session{}, ErrUnauthorizedRequest
	}

	claims, err := a.tokens.Verify(ctx, rawRefreshToken, models.TokenKindRefresh)
	if err != nil {
		log.Info().Err(err).Msg("refresh token rejected")
		return models.Session{}, ErrInvalidRefreshToken
	}

	user, err := a.userRepository.FindUserByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("user_id", claims.UserID()).Msg("refresh token of unknown user")
			return models.Session{}, ErrInvalidRefreshToken
		}
		log.Err(err).Str("func", "*authService.RefreshSession").Msg("user search failed")
		return models.Session{}, fmt.Errorf("user search failed: %w", err)
	}

	if user.RefreshToken == "" || subtle.ConstantTimeCompare([]byte(user.RefreshToken), []byte(rawRefreshToken)) != 1 {
		log.Info().Str("user_id", user.UserID).Msg("refresh token does not match the stored one")
		return models.Session{}, ErrInvalidRefreshToken
	}

	access, refresh, err := a.issuePair(ctx, user)
	if err != nil {
		return models.Session{}, err
	}

	err = a.userRepository.SwapRefreshToken(ctx, user.UserID, rawRefreshToken, refresh.String())
	if err != nil {
		if errors.Is(err, store.ErrRefreshTokenMismatch) {
			log.Info().Str("user_id", user.UserID).Msg("refresh token rotated concurrently")
			return models.Session{}, ErrInvalidRefreshToken
		}
		log.Err(err).Str("func", "*authService.RefreshSession").Msg("refresh token rotation failed")
		return models.Session{}, fmt.Errorf("refresh token rotation failed: %w", err)
	}

	return models.Session{
		User:         user.Sanitized(),
		AccessToken:  access.String(),
		RefreshToken: refresh.String(),
	}, nil
}

// ChangeCurrentPassword replaces the password of userID after verifying
// the old one. The refresh token is left untouched.
func (a *authService) ChangeCurrentPassword(ctx context.Context, userID string, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.ChangeCurrentPassword").Msg("user search failed")
		return fmt.Errorf("user search failed: %w", err)
	}

	if !a.hasher.Verify(change.OldPassword, user.PasswordHash) {
		log.Info().Str("user_id", userID).Msg("password change rejected: old password does not match")
		return ErrInvalidOldPassword
	}

	if change.NewPassword == change.OldPassword {
		return ErrSamePassword
	}

	passwordHash, err := a.hasher.Hash(change.NewPassword)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) || errors.Is(err, crypto.ErrEmptyPassword) {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
		log.Err(err).Str("func", "*authService.ChangeCurrentPassword").Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	updated, err := a.userRepository.UpdateUser(ctx, models.UserPatch{UserID: userID, PasswordHash: &passwordHash})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.ChangeCurrentPassword").Msg("password was not stored")
		return fmt.Errorf("password was not stored: %w", err)
	}

	publishEvent(ctx, a.events, models.EventUserPasswordChanged, updated, a.now())

	return nil
}

// Authorize resolves an access token to its user. Every failure collapses
// into ErrUnauthorizedRequest (no token) or ErrInvalidAccessToken; the
// cause is only logged.
func (a *authService) Authorize(ctx context.Context, rawCredential string) (models.User, error) {
	log := logger.FromContext(ctx)

	if rawCredential == "" {
		return models.User{}, ErrUnauthorizedRequest
	}

	claims, err := a.tokens.Verify(ctx, rawCredential, models.TokenKindAccess)
	if err != nil {
		log.Info().Err(err).Msg("access token rejected")
		return models.User{}, ErrInvalidAccessToken
	}

	user, err := a.userRepository.FindUserByID(ctx, claims.UserID())
	if err != nil {
		log.Warn().Err(err).Str("user_id", claims.UserID()).Msg("access token user could not be loaded")
		return models.User{}, ErrInvalidAccessToken
	}

	return user.Sanitized(), nil
}

func (a *authService) issuePair(ctx context.Context, user models.User) (models.Token, models.Token, error) {
	log := logger.FromContext(ctx)

	access, err := a.tokens.IssueAccessToken(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.issuePair").Msg("access token was not issued")
		return models.Token{}, models.Token{}, err
	}

	refresh, err := a.tokens.IssueRefreshToken(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "*authService.issuePair").Msg("refresh token was not issued")
		return models.Token{}, models.Token{}, err
	}

	return access, refresh, nil
}

func normalizeIdentity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
