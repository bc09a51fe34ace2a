package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/app"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	files, err := h.receiveFiles(r, fieldAvatar, fieldCoverImage)
	defer files.cleanup(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	registration := models.Registration{
		FullName:       r.FormValue(fieldFullName),
		Email:          r.FormValue(fieldEmail),
		Username:       r.FormValue(fieldUsername),
		Password:       r.FormValue(fieldPassword),
		AvatarPath:     files.path(fieldAvatar),
		CoverImagePath: files.path(fieldCoverImage),
	}

	user, err := h.services.AuthService.RegisterUser(ctx, registration)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, user, app.MsgUserRegistered)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials, false); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookies(w, session)
	utils.WriteSuccess(w, http.StatusOK, session, app.MsgUserLoggedIn)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var token string
	if c, err := r.Cookie(refreshTokenCookie); err == nil {
		token = c.Value
	}
	if token == "" {
		var body models.RefreshRequest
		if err := decodeJSON(r, &body, true); err != nil {
			writeError(w, r, err)
			return
		}
		token = body.RefreshToken
	}

	session, err := h.services.AuthService.RefreshSession(ctx, token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookies(w, session)
	utils.WriteSuccess(w, http.StatusOK, session, app.MsgAccessTokenRefreshed)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.Logout(ctx, userID); err != nil {
		writeError(w, r, err)
		return
	}

	h.clearSessionCookies(w)
	utils.WriteSuccess(w, http.StatusOK, struct{}{}, app.MsgUserLoggedOut)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var change models.PasswordChange
	if err = decodeJSON(r, &change, false); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.ChangeCurrentPassword(ctx, userID, change); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, struct{}{}, app.MsgPasswordChanged)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AccountService.GetCurrentUser(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, user, app.MsgCurrentUserFetched)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deletion, err := h.services.AccountService.DeleteAccount(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.clearSessionCookies(w)
	utils.WriteSuccess(w, http.StatusOK, deletion.User, app.MsgAccountDeleted, deletion.Warnings...)
}

func (h *Handler) changeAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	files, err := h.receiveFiles(r, fieldAvatar)
	defer files.cleanup(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if files.path(fieldAvatar) == "" {
		writeError(w, r, ErrAvatarFileMissing)
		return
	}

	swap, err := h.services.AccountService.ChangeAvatar(ctx, userID, files.path(fieldAvatar))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, swap, app.MsgAvatarUpdated, swap.Warnings...)
}

func (h *Handler) changeCoverImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	files, err := h.receiveFiles(r, fieldCoverImage)
	defer files.cleanup(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if files.path(fieldCoverImage) == "" {
		writeError(w, r, ErrCoverImageFileMissing)
		return
	}

	swap, err := h.services.AccountService.ChangeCoverImage(ctx, userID, files.path(fieldCoverImage))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, swap, app.MsgCoverImageUpdated, swap.Warnings...)
}
