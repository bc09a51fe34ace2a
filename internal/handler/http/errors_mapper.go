package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/app"
	"github.com/MKhiriev/go-account-keeper/internal/crypto"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/internal/validators"
)

// errorStatusMap maps error kinds to HTTP statuses. Specific errors wrap
// exactly one kind, so the first match wins.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrConflict, http.StatusConflict},
	{service.ErrAuth, http.StatusUnauthorized},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrUpload, http.StatusBadGateway},
	{service.ErrDeletion, http.StatusBadGateway},

	{ErrInvalidBody, http.StatusBadRequest},
	{ErrInvalidMultipart, http.StatusBadRequest},
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
	{ErrAvatarFileMissing, http.StatusBadRequest},
	{ErrCoverImageFileMissing, http.StatusBadRequest},

	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},
}

// errorMessages holds the client-safe text of errors that have one. The
// order matters: more specific errors come before the kinds they wrap.
var errorMessages = []struct {
	err     error
	message string
}{
	{service.ErrUserAlreadyExists, app.MsgUserAlreadyExists},
	{service.ErrAvatarRequired, app.MsgAvatarRequired},
	{service.ErrSamePassword, app.MsgSamePassword},
	{service.ErrUserNotFound, app.MsgUserNotFound},
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrInvalidOldPassword, app.MsgInvalidOldPassword},
	{service.ErrUnauthorizedRequest, app.MsgUnauthorized},
	{service.ErrInvalidAccessToken, app.MsgInvalidAccessToken},
	{service.ErrInvalidRefreshToken, app.MsgInvalidRefresh},
	{service.ErrAvatarUpload, app.MsgAvatarUpload},
	{service.ErrCoverImageUpload, app.MsgCoverImageUpload},

	{validators.ErrAllFieldsRequired, app.MsgAllFieldsRequired},
	{validators.ErrInvalidEmail, app.MsgInvalidEmail},
	{validators.ErrUsernameOrEmailRequired, app.MsgUsernameOrEmailRequired},
	{validators.ErrPasswordRequired, app.MsgPasswordRequired},
	{validators.ErrPasswordsRequired, app.MsgPasswordsRequired},
	{validators.ErrPasswordTooLong, app.MsgPasswordTooLong},
	{crypto.ErrPasswordTooLong, app.MsgPasswordTooLong},
	{crypto.ErrEmptyPassword, app.MsgPasswordRequired},

	{ErrInvalidBody, app.MsgInvalidDataProvided},
	{ErrInvalidMultipart, app.MsgInvalidDataProvided},
	{ErrBodyTooLarge, app.MsgRequestTooLarge},
	{ErrAvatarFileMissing, app.MsgAvatarMissing},
	{ErrCoverImageFileMissing, app.MsgCoverImageMissing},

	{service.ErrValidation, app.MsgInvalidDataProvided},
	{service.ErrAuth, app.MsgUnauthorized},
	{service.ErrUpload, app.MsgImageHostFailed},
	{service.ErrDeletion, app.MsgImageHostFailed},
	{store.ErrStoreUnavailable, app.MsgServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for _, e := range errorMessages {
		if errors.Is(err, e.err) {
			return e.message
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err with the request logger and answers with the error
// envelope. Unknown errors become a 500 with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, messageFromError(err))
}
