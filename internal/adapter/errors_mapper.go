package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// hostStatusErrors maps image host status codes onto adapter sentinels.
var hostStatusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrBadGateway,
	http.StatusGatewayTimeout:      ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// hostErrorBody is the error document returned by the upload API.
type hostErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// mapHTTPError turns a non-2xx image host response into an error carrying
// the host's own message when it sent one.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	detail := hostErrorDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(code)
	}

	if sentinel, ok := hostStatusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return fmt.Errorf("image host: http %d: %s", code, detail)
}

func hostErrorDetail(body []byte) string {
	var doc hostErrorBody
	if err := json.Unmarshal(body, &doc); err == nil && doc.Error.Message != "" {
		return doc.Error.Message
	}
	return strings.TrimSpace(string(body))
}
