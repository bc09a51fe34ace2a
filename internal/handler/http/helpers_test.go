package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/mock"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "valid-access-token"

var testUser = models.User{
	UserID:   "u-1",
	Username: "alice",
	Email:    "alice@example.com",
	FullName: "Alice Liddell",
	Avatar:   models.Image{URL: "https://images.test/a.png", PublicID: "a"},
}

type testServices struct {
	auth    *mock.MockAuthService
	account *mock.MockAccountService
	appInfo *mock.MockAppInfoService
}

// newTestHandler builds a Handler over gomock services with the default
// body limits and a per-test upload directory.
func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testServices{
		auth:    mock.NewMockAuthService(ctrl),
		account: mock.NewMockAccountService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:    m.auth,
		AccountService: m.account,
		AppInfoService: m.appInfo,
	}
	server := config.Server{MaxBodyBytes: 16 << 10, MaxUploadBytes: 10 << 20}
	uploads := config.Uploads{TempDir: t.TempDir()}

	return NewHandler(services, server, uploads, logger.Nop()), m
}

// expectAuthorized lets testToken through the auth middleware.
func (m testServices) expectAuthorized() {
	m.auth.EXPECT().Authorize(gomock.Any(), testToken).Return(testUser, nil)
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

// multipartRequest builds a multipart body from text fields and files
// (field name -> file content).
func multipartRequest(t *testing.T, method, path string, fields map[string]string, files map[string][]byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for k, content := range files {
		fw, err := mw.CreateFormFile(k, k+".png")
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// envelope mirrors models.Response with a raw payload.
type envelope struct {
	StatusCode int              `json:"statusCode"`
	Data       json.RawMessage  `json:"data"`
	Message    string           `json:"message"`
	Success    bool             `json:"success"`
	Warnings   []models.Warning `json:"warnings"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
