package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs access and refresh tokens with two distinct HS256
// secrets. All state is read-only after construction.
type tokenService struct {
	accessSecret  string
	accessTTL     time.Duration
	refreshSecret string
	refreshTTL    time.Duration
	issuer        string

	now func() time.Time
}

// NewTokenService builds a [TokenService] from cfg. Missing or identical
// secrets, non-positive lifetimes and an empty issuer are rejected with
// [ErrConfiguration]: the process must not start without them.
func NewTokenService(cfg config.Auth) (TokenService, error) {
	var errs []error
	if cfg.AccessTokenSecret == "" {
		errs = append(errs, errors.New("access token secret is empty"))
	}
	if cfg.RefreshTokenSecret == "" {
		errs = append(errs, errors.New("refresh token secret is empty"))
	}
	if cfg.AccessTokenSecret != "" && cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		errs = append(errs, errors.New("access and refresh token secrets must differ"))
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		errs = append(errs, errors.New("token lifetimes must be positive"))
	}
	if cfg.TokenIssuer == "" {
		errs = append(errs, errors.New("token issuer is empty"))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, errors.Join(errs...))
	}

	return &tokenService{
		accessSecret:  cfg.AccessTokenSecret,
		accessTTL:     cfg.AccessTokenTTL,
		refreshSecret: cfg.RefreshTokenSecret,
		refreshTTL:    cfg.RefreshTokenTTL,
		issuer:        cfg.TokenIssuer,
		now:           time.Now,
	}, nil
}

// IssueAccessToken implements [TokenService]. The token carries the
// profile claims of user for display purposes.
func (s *tokenService) IssueAccessToken(_ context.Context, user models.User) (models.Token, error) {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.UserID},
		Username:         user.Username,
		Email:            user.Email,
		FullName:         user.FullName,
	}

	token, err := utils.GenerateJWTToken(s.issuer, claims, s.now(), s.accessTTL, s.accessSecret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	token.Kind = models.TokenKindAccess

	return token, nil
}

// IssueRefreshToken implements [TokenService].
func (s *tokenService) IssueRefreshToken(_ context.Context, userID string) (models.Token, error) {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
	}

	token, err := utils.GenerateJWTToken(s.issuer, claims, s.now(), s.refreshTTL, s.refreshSecret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	token.Kind = models.TokenKindRefresh

	return token, nil
}

// Verify implements [TokenService].
func (s *tokenService) Verify(_ context.Context, token string, kind models.TokenKind) (models.TokenClaims, error) {
	var secret string
	switch kind {
	case models.TokenKindAccess:
		secret = s.accessSecret
	case models.TokenKindRefresh:
		secret = s.refreshSecret
	default:
		return models.TokenClaims{}, fmt.Errorf("%w: unknown token kind %q", ErrTokenInvalid, kind)
	}

	claims, err := utils.ValidateAndParseJWTToken(token, secret, s.issuer, s.now())
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	default:
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
}
