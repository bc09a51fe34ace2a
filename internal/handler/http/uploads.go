package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

// Multipart form field names.
const (
	fieldFullName   = "fullName"
	fieldEmail      = "email"
	fieldUsername   = "username"
	fieldPassword   = "password"
	fieldAvatar     = "avatar"
	fieldCoverImage = "coverImage"
)

// multipartMemory is the part of a multipart body kept in memory while
// parsing; the rest spills to disk.
const multipartMemory = 1 << 20

// tempFiles are the files of one request written to the upload directory.
// They must be removed with cleanup once the request is answered.
type tempFiles struct {
	paths map[string]string
	form  *multipart.Form
}

// path returns the local path of the file sent in field, or "".
func (t *tempFiles) path(field string) string {
	return t.paths[field]
}

func (t *tempFiles) cleanup(r *http.Request) {
	log := logger.FromRequest(r)

	for field, p := range t.paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("field", field).Str("path", p).Msg("temporary upload was not removed")
		}
	}
	if t.form != nil {
		if err := t.form.RemoveAll(); err != nil {
			log.Warn().Err(err).Msg("multipart spill files were not removed")
		}
	}
}

// receiveFiles parses the multipart body of r and copies the file parts
// named in fields to the upload directory. Missing parts are skipped. The
// returned tempFiles is never nil, so cleanup can be deferred before the
// error is checked.
func (h *Handler) receiveFiles(r *http.Request, fields ...string) (*tempFiles, error) {
	files := &tempFiles{paths: make(map[string]string, len(fields))}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		files.form = r.MultipartForm
		if isBodyTooLarge(err) {
			return files, fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
		}
		return files, fmt.Errorf("%w: %w", ErrInvalidMultipart, err)
	}
	files.form = r.MultipartForm

	dir := h.uploads.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return files, fmt.Errorf("upload directory is not usable: %w", err)
	}

	for _, field := range fields {
		headers := r.MultipartForm.File[field]
		if len(headers) == 0 {
			continue
		}

		p, err := saveFormFile(dir, headers[0])
		if p != "" {
			files.paths[field] = p
		}
		if err != nil {
			return files, fmt.Errorf("saving %s: %w", field, err)
		}
	}

	return files, nil
}

func saveFormFile(dir string, header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.CreateTemp(dir, "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", err
	}

	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		return dst.Name(), err
	}

	return dst.Name(), nil
}

func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
