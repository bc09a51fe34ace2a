package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error a service returns to its caller wraps exactly
// one of these, so transports can classify it with [errors.Is].
var (
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
	ErrAuth          = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrUpload        = errors.New("upload failed")
	ErrDeletion      = errors.New("deletion failed")
	ErrConfiguration = errors.New("configuration error")
)

var (
	ErrAvatarRequired        = fmt.Errorf("%w: avatar file is required", ErrValidation)
	ErrImageFileRequired     = fmt.Errorf("%w: image file is required", ErrValidation)
	ErrSamePassword          = fmt.Errorf("%w: new password must differ from the old one", ErrValidation)
	ErrUserAlreadyExists     = fmt.Errorf("%w: user with email or username already exists", ErrConflict)
	ErrUserNotFound          = fmt.Errorf("%w: user does not exist", ErrNotFound)
	ErrAvatarUpload          = fmt.Errorf("%w: error while uploading avatar", ErrUpload)
	ErrCoverImageUpload      = fmt.Errorf("%w: error while uploading cover image", ErrUpload)
	ErrImageDeletion         = fmt.Errorf("%w: error while deleting image", ErrDeletion)
	ErrVersionIsNotSpecified = fmt.Errorf("%w: app version is not specified", ErrConfiguration)
)

// Authentication failures. Their messages are what clients see; the
// underlying cause is only logged.
var (
	ErrInvalidCredentials  = fmt.Errorf("%w: invalid user credentials", ErrAuth)
	ErrUnauthorizedRequest = fmt.Errorf("%w: unauthorized request", ErrAuth)
	ErrInvalidAccessToken  = fmt.Errorf("%w: invalid access token", ErrAuth)
	ErrInvalidRefreshToken = fmt.Errorf("%w: refresh token is expired or used", ErrAuth)
	ErrInvalidOldPassword  = fmt.Errorf("%w: invalid old password", ErrAuth)
)

// Token verification outcomes returned by TokenService.Verify.
var (
	ErrTokenInvalid        = fmt.Errorf("%w: token is invalid", ErrAuth)
	ErrTokenExpired        = fmt.Errorf("%w: token is expired", ErrAuth)
	ErrTokenMalformed      = fmt.Errorf("%w: token is malformed", ErrAuth)
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Internal tags for login failures. Both surface as ErrInvalidCredentials.
var (
	errUserNotFound  = errors.New("login: no such user")
	errWrongPassword = errors.New("login: wrong password")
)
