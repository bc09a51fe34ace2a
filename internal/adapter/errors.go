package adapter

import "errors"

// Sentinels mapped from image host HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("image host: bad request")
	ErrUnauthorized        = errors.New("image host: unauthorized")
	ErrForbidden           = errors.New("image host: forbidden")
	ErrNotFound            = errors.New("image host: not found")
	ErrConflict            = errors.New("image host: conflict")
	ErrBadGateway          = errors.New("image host: bad gateway")
	ErrInternalServerError = errors.New("image host: internal server error")
)

var (
	// ErrUploadFailed wraps every failure of ImageHost.Upload.
	ErrUploadFailed = errors.New("image upload failed")

	// ErrDeleteFailed wraps every failure of ImageHost.Delete.
	ErrDeleteFailed = errors.New("image deletion failed")

	// ErrEmptyImageURL is returned when the host accepted an upload but
	// reported no URL for it.
	ErrEmptyImageURL = errors.New("image host returned an empty url")

	// ErrEmptyLocalPath is returned by Upload for an empty path.
	ErrEmptyLocalPath = errors.New("local file path is empty")

	// ErrEmptyPublicID is returned by Delete for an empty public id.
	ErrEmptyPublicID = errors.New("public id is empty")

	// ErrUnsupportedProvider is returned by NewImageHost for an unknown
	// provider name.
	ErrUnsupportedProvider = errors.New("unsupported image host provider")

	// ErrPublishFailed wraps failures of EventPublisher.Publish.
	ErrPublishFailed = errors.New("event publish failed")
)
