package adapter

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// s3API is the part of *s3.Client the image host calls.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// s3ImageHost stores images as objects in one bucket. The object key is the
// public id; the URL is PublicBaseURL joined with the key.
type s3ImageHost struct {
	client        s3API
	bucket        string
	folder        string
	publicBaseURL string
	timeout       time.Duration

	logger *logger.Logger
	newKey func(ext string) string
}

// NewS3ImageHost builds an S3 (or S3-compatible, e.g. MinIO) [ImageHost]
// from cfg.S3. Static credentials are used when an access key is set;
// otherwise the default AWS credential chain applies.
func NewS3ImageHost(ctx context.Context, cfg config.ImageHost, log *logger.Logger) (ImageHost, error) {
	if cfg.S3.Bucket == "" {
		return nil, fmt.Errorf("%w: s3 bucket is required", ErrUnsupportedProvider)
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Debug().Str("func", "NewS3ImageHost").Str("bucket", cfg.S3.Bucket).Msg("image host created")

	return newS3ImageHost(client, cfg, log), nil
}

func newS3ImageHost(client s3API, cfg config.ImageHost, log *logger.Logger) *s3ImageHost {
	base := cfg.S3.PublicBaseURL
	if base == "" && cfg.S3.Endpoint != "" {
		base = strings.TrimRight(cfg.S3.Endpoint, "/") + "/" + cfg.S3.Bucket
	}

	return &s3ImageHost{
		client:        client,
		bucket:        cfg.S3.Bucket,
		folder:        cfg.Folder,
		publicBaseURL: strings.TrimRight(base, "/"),
		timeout:       cfg.Timeout,
		logger:        log,
		newKey: func(ext string) string {
			return uuid.NewString() + ext
		},
	}
}

// Upload implements [ImageHost].
func (h *s3ImageHost) Upload(ctx context.Context, localPath string) (models.Image, error) {
	log := logger.FromContext(ctx)

	if localPath == "" {
		return models.Image{}, fmt.Errorf("%w: %w", ErrUploadFailed, ErrEmptyLocalPath)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return models.Image{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	defer f.Close()

	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	ext := strings.ToLower(filepath.Ext(localPath))
	key := path.Join(h.folder, h.newKey(ext))

	input := &s3.PutObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(key),
		Body:   f,
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err = h.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3ImageHost.Upload").Str("key", key).Msg("put object failed")
		return models.Image{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	if h.publicBaseURL == "" {
		return models.Image{}, fmt.Errorf("%w: %w", ErrUploadFailed, ErrEmptyImageURL)
	}

	return models.Image{URL: h.publicBaseURL + "/" + key, PublicID: key}, nil
}

// Delete implements [ImageHost]. S3 deletes are idempotent, so a missing
// object is detected with HeadObject first and reported as "not found".
func (h *s3ImageHost) Delete(ctx context.Context, publicID string) (models.DeletionResult, error) {
	log := logger.FromContext(ctx)

	if publicID == "" {
		return models.DeletionResult{}, fmt.Errorf("%w: %w", ErrDeleteFailed, ErrEmptyPublicID)
	}

	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	_, err := h.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return models.DeletionResult{Result: models.DeletionResultNotFound}, nil
		}
		log.Err(err).Str("func", "*s3ImageHost.Delete").Str("key", publicID).Msg("head object failed")
		return models.DeletionResult{}, fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	_, err = h.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3ImageHost.Delete").Str("key", publicID).Msg("delete object failed")
		return models.DeletionResult{}, fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	return models.DeletionResult{Result: models.DeletionResultOK}, nil
}

func (h *s3ImageHost) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.timeout)
}
