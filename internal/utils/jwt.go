package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	errInvalidJWTParams       = errors.New("invalid params for generating JWT Token")
	errEmptySubject           = errors.New("empty subject error")
	errInvalidAuthorization   = errors.New("invalid authorization header")
	errUnsupportedAuthzScheme = errors.New("unsupported authorization scheme")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The caller supplies the subject and any custom claims; the registered
// claims are filled in here:
//   - Issuer    (iss): identifies the service that issued the token
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//   - ID        (jti): a random UUID, so two tokens minted in the same
//     second never collide
//
// Returns an error if issuer, subject, tokenDuration or signKey is empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", models.TokenClaims{...}, time.Now(), time.Hour, "secret")
func GenerateJWTToken(issuer string, claims models.TokenClaims, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || claims.Subject == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errInvalidJWTParams
	}

	expiresAt := issuedAt.Add(tokenDuration)
	claims.Issuer = issuer
	claims.IssuedAt = jwt.NewNumericDate(issuedAt)
	claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	claims.ID = uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		ExpiresAt:    expiresAt,
		Claims:       claims,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes signature verification with tokenSignKey (HS256 only),
// the iss claim against tokenIssuer, presence and validity of exp measured
// against now, and presence of the sub claim.
//
// Errors from the jwt library are wrapped, so callers may match them with
// errors.Is (jwt.ErrTokenExpired, jwt.ErrTokenMalformed, ...).
//
// Example usage:
//
//	claims, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "my-service", time.Now())
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.TokenClaims, error) {
	claims := models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.TokenClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.TokenClaims{}, errEmptySubject
	}

	return claims, nil
}

// ParseBearerToken extracts the credential from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || parts[1] == "" {
		return "", errInvalidAuthorization
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", errUnsupportedAuthzScheme
	}
	return parts[1], nil
}
