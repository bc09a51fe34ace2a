package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/validators"
	"github.com/MKhiriev/go-account-keeper/models"
)

// AuthValidationService rejects malformed input before it reaches the
// wrapped AuthService. Validator errors are reported as ErrValidation.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, registration models.Registration) (models.User, error) {
	// registration should consist of:
	//  - FullName
	//  - Email (well-formed)
	//  - Username
	//  - Password (at most 72 bytes)
	// the avatar is checked by the service, after the duplicate check
	if err := v.validator.Validate(ctx, registration); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.RegisterUser(ctx, registration)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) Logout(ctx context.Context, userID string) error {
	return v.inner.Logout(ctx, userID)
}

func (v *AuthValidationService) RefreshSession(ctx context.Context, rawRefreshToken string) (models.Session, error) {
	return v.inner.RefreshSession(ctx, rawRefreshToken)
}

func (v *AuthValidationService) ChangeCurrentPassword(ctx context.Context, userID string, change models.PasswordChange) error {
	if err := v.validator.Validate(ctx, change); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.ChangeCurrentPassword(ctx, userID, change)
}

func (v *AuthValidationService) Authorize(ctx context.Context, rawCredential string) (models.User, error) {
	return v.inner.Authorize(ctx, rawCredential)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
