package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-account-keeper/internal/app"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// runAuth passes req through the auth middleware and reports the user the
// next handler saw, if it was reached.
func runAuth(h *Handler, req *http.Request) (*httptest.ResponseRecorder, *models.User) {
	var seen *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := utils.GetUserFromContext(r.Context()); ok {
			seen = &user
		}
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestAuth_BearerHeader(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Authorize(gomock.Any(), "header-token").Return(testUser, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	rec, seen := runAuth(h, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "u-1", seen.UserID)
}

func TestAuth_CookieWinsOverHeader(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Authorize(gomock.Any(), "cookie-token").Return(testUser, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "cookie-token"})
	rec, seen := runAuth(h, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotNil(t, seen)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		setup       func(m testServices)
		wantMessage string
	}{
		{
			name: "no credential",
			setup: func(m testServices) {
				m.auth.EXPECT().Authorize(gomock.Any(), "").Return(models.User{}, service.ErrUnauthorizedRequest)
			},
			wantMessage: app.MsgUnauthorized,
		},
		{
			name:        "wrong scheme",
			header:      "Basic dXNlcjpwYXNz",
			setup:       func(testServices) {},
			wantMessage: app.MsgInvalidAccessToken,
		},
		{
			name:        "scheme without token",
			header:      "Bearer",
			setup:       func(testServices) {},
			wantMessage: app.MsgInvalidAccessToken,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(m testServices) {
				m.auth.EXPECT().Authorize(gomock.Any(), "expired").Return(models.User{}, service.ErrInvalidAccessToken)
			},
			wantMessage: app.MsgInvalidAccessToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec, seen := runAuth(h, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, seen)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMessage, env.Message)
		})
	}
}

func TestAuth_ProtectedRoutesRequireToken(t *testing.T) {
	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/v1/users/logout"},
		{http.MethodPatch, "/api/v1/users/change-password"},
		{http.MethodGet, "/api/v1/users/current-user"},
		{http.MethodDelete, "/api/v1/users/delete-account"},
		{http.MethodPatch, "/api/v1/users/change-avatar"},
		{http.MethodPatch, "/api/v1/users/cover-image"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().Authorize(gomock.Any(), "").Return(models.User{}, service.ErrUnauthorizedRequest)

			rec := serve(h, httptest.NewRequest(rt.method, rt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
