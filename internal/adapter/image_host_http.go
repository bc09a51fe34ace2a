package adapter

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

// httpImageHost talks to a Cloudinary-compatible upload API:
//
//	POST {base}/{cloud}/image/upload   multipart file + signed params
//	POST {base}/{cloud}/image/destroy  form public_id + signed params
//
// Every request is signed with sha1(sorted params + api secret).
type httpImageHost struct {
	client    *utils.HTTPClient
	cloudName string
	apiKey    string
	apiSecret string
	folder    string

	logger *logger.Logger
	now    func() time.Time
}

// uploadResponse is the subset of the upload API reply the service uses.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	PublicID  string `json:"public_id"`
}

// NewHTTPImageHost constructs the HTTP implementation of [ImageHost] from
// cfg. BaseURL, CloudName, APIKey and APISecret are required.
func NewHTTPImageHost(cfg config.ImageHost, log *logger.Logger) (ImageHost, error) {
	if cfg.BaseURL == "" || cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("%w: base url, cloud name, api key and api secret are required", ErrUnsupportedProvider)
	}

	client := utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.Timeout)

	log.Debug().Str("func", "NewHTTPImageHost").Str("cloud", cfg.CloudName).Msg("image host created")

	return &httpImageHost{
		client:    client,
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.Folder,
		logger:    log,
		now:       time.Now,
	}, nil
}

// Upload implements [ImageHost].
func (h *httpImageHost) Upload(ctx context.Context, localPath string) (models.Image, error) {
	log := logger.FromContext(ctx)

	if localPath == "" {
		return models.Image{}, fmt.Errorf("%w: %w", ErrUploadFailed, ErrEmptyLocalPath)
	}
	if _, err := os.Stat(localPath); err != nil {
		return models.Image{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	params := map[string]string{
		"timestamp": strconv.FormatInt(h.now().Unix(), 10),
	}
	if h.folder != "" {
		params["folder"] = h.folder
	}

	var result uploadResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetFile("file", localPath).
		SetFormData(h.signed(params)).
		SetResult(&result).
		Post(fmt.Sprintf("/%s/image/upload", h.cloudName))
	if err != nil {
		log.Err(err).Str("func", "*httpImageHost.Upload").Msg("upload request failed")
		return models.Image{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpImageHost.Upload").Int("status", resp.StatusCode()).Msg("image host rejected upload")
		return models.Image{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	image := models.Image{URL: result.SecureURL, PublicID: result.PublicID}
	if image.URL == "" {
		image.URL = result.URL
	}
	if image.URL == "" {
		return models.Image{}, fmt.Errorf("%w: %w", ErrUploadFailed, ErrEmptyImageURL)
	}

	return image, nil
}

// Delete implements [ImageHost].
func (h *httpImageHost) Delete(ctx context.Context, publicID string) (models.DeletionResult, error) {
	log := logger.FromContext(ctx)

	if publicID == "" {
		return models.DeletionResult{}, fmt.Errorf("%w: %w", ErrDeleteFailed, ErrEmptyPublicID)
	}

	params := map[string]string{
		"public_id": publicID,
		"timestamp": strconv.FormatInt(h.now().Unix(), 10),
	}

	var result models.DeletionResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(h.signed(params)).
		SetResult(&result).
		Post(fmt.Sprintf("/%s/image/destroy", h.cloudName))
	if err != nil {
		log.Err(err).Str("func", "*httpImageHost.Delete").Msg("destroy request failed")
		return models.DeletionResult{}, fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpImageHost.Delete").Int("status", resp.StatusCode()).Msg("image host rejected destroy")
		return models.DeletionResult{}, fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	if !result.Deleted() {
		return result, fmt.Errorf("%w: host answered %q", ErrDeleteFailed, result.Result)
	}

	return result, nil
}

// signed returns params with api_key and signature added.
func (h *httpImageHost) signed(params map[string]string) map[string]string {
	out := make(map[string]string, len(params)+2)
	for k, v := range params {
		out[k] = v
	}
	out["signature"] = sign(params, h.apiSecret)
	out["api_key"] = h.apiKey
	return out
}

// sign computes the request signature: params sorted by key, joined as
// k=v pairs with '&', followed by the secret, sha1 hex encoded.
func sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
