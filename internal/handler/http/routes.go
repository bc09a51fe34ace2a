package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/app"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const usersPrefix = "/api/v1/users"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	jsonBody := limitBody(h.server.MaxBodyBytes)
	multipartBody := limitBody(h.server.MaxUploadBytes)

	router.Get("/api/version/", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.With(multipartBody).Post(usersPrefix+"/register", h.register)
		r.With(jsonBody).Post(usersPrefix+"/login", h.login)
		r.With(jsonBody).Post(usersPrefix+"/refresh-token", h.refreshToken)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post(usersPrefix+"/logout", h.logout)
		r.With(jsonBody).Patch(usersPrefix+"/change-password", h.changePassword)
		r.Get(usersPrefix+"/current-user", h.currentUser)
		r.Delete(usersPrefix+"/delete-account", h.deleteAccount)
		r.Delete(usersPrefix+"/deleteAccount", h.deleteAccount)
		r.With(multipartBody).Patch(usersPrefix+"/change-avatar", h.changeAvatar)
		r.With(multipartBody).Patch(usersPrefix+"/cover-image", h.changeCoverImage)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, app.MsgRouteNotFound)
}

// limitBody caps request bodies at n bytes. A non-positive n disables the
// limit.
func limitBody(n int64) func(http.Handler) http.Handler {
	if n <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.RequestSize(n)
}
