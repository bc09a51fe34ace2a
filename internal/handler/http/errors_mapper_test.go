package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-account-keeper/internal/app"
	"github.com/MKhiriev/go-account-keeper/internal/crypto"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	validation := func(err error) error { return fmt.Errorf("%w: %w", service.ErrValidation, err) }

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"all fields", validation(validators.ErrAllFieldsRequired), http.StatusBadRequest, app.MsgAllFieldsRequired},
		{"bad email", validation(validators.ErrInvalidEmail), http.StatusBadRequest, app.MsgInvalidEmail},
		{"no identity", validation(validators.ErrUsernameOrEmailRequired), http.StatusBadRequest, app.MsgUsernameOrEmailRequired},
		{"hash limit", validation(crypto.ErrPasswordTooLong), http.StatusBadRequest, app.MsgPasswordTooLong},
		{"same password", service.ErrSamePassword, http.StatusBadRequest, app.MsgSamePassword},
		{"image required", service.ErrImageFileRequired, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"conflict", service.ErrUserAlreadyExists, http.StatusConflict, app.MsgUserAlreadyExists},
		{"not found", service.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
		{"token expired", service.ErrTokenExpired, http.StatusUnauthorized, app.MsgUnauthorized},
		{"deletion", service.ErrImageDeletion, http.StatusBadGateway, app.MsgImageHostFailed},
		{"body", fmt.Errorf("%w: eof", ErrInvalidBody), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"too large", ErrBodyTooLarge, http.StatusRequestEntityTooLarge, app.MsgRequestTooLarge},
		{"store down", fmt.Errorf("find: %w", store.ErrStoreUnavailable), http.StatusServiceUnavailable, app.MsgServiceUnavailable},
		{"query failed", store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
			assert.Equal(t, tt.wantMessage, messageFromError(tt.err))
		})
	}
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rec, req, service.ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"statusCode":401,"message":"Invalid user credentials","success":false}`, rec.Body.String())
}
