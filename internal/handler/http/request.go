package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

// Cookie names carrying the session tokens.
const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// decodeJSON reads the JSON body of r into v. An empty body is accepted
// when allowEmpty is set and leaves v untouched.
func decodeJSON(r *http.Request, v any, allowEmpty bool) error {
	err := json.NewDecoder(r.Body).Decode(v)
	switch {
	case err == nil:
		return nil
	case allowEmpty && errors.Is(err, io.EOF):
		return nil
	case isBodyTooLarge(err):
		return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, h.sessionCookie(accessTokenCookie, session.AccessToken))
	http.SetCookie(w, h.sessionCookie(refreshTokenCookie, session.RefreshToken))
}

func (h *Handler) clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		c := h.sessionCookie(name, "")
		c.MaxAge = -1
		http.SetCookie(w, c)
	}
}

func (h *Handler) sessionCookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.server.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// accessTokenFromRequest returns the access token of r. The accessToken
// cookie takes precedence over the "Authorization: Bearer" header.
func accessTokenFromRequest(r *http.Request) (string, error) {
	if c, err := r.Cookie(accessTokenCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", nil
	}

	return utils.ParseBearerToken(header)
}

// currentUserID returns the id stored by the auth middleware.
func currentUserID(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrNoUserInContext
	}
	return userID, nil
}
