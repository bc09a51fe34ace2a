package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
)

// auth is an HTTP middleware that admits requests carrying a valid access
// token.
//
// The token is read from the accessToken cookie or, when the cookie is
// absent, from an "Authorization: Bearer <token>" header. It is resolved
// with [service.AuthService.Authorize], which reloads the user from the
// store; the sanitized user is stored in the request context for the
// downstream handlers.
//
// Every failure is answered with 401 and the error envelope. Only the
// request log tells the causes apart.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := accessTokenFromRequest(r)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidAccessToken, err))
			return
		}

		user, err := h.services.AuthService.Authorize(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log := logger.FromRequest(r).WithStr("user_id", user.UserID)
		ctx = log.WithContext(utils.WithUser(ctx, user))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
