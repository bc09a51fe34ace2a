// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the clients of external systems the account
// service depends on: the image host that stores avatars and cover images,
// and the event bus that receives account lifecycle events.
//
// Two [ImageHost] implementations ship: a Cloudinary-compatible HTTP client
// ([NewHTTPImageHost]) and an S3 object storage client ([NewS3ImageHost]).
// [NewKafkaEventPublisher] publishes [models.AccountEvent] values to Kafka;
// [NewNopEventPublisher] is used when no brokers are configured.
//
// Transport failures are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrUploadFailed], [ErrDeleteFailed]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ImageHost stores image files outside the service and removes them by
// public id.
type ImageHost interface {
	// Upload sends the file at localPath to the host and returns its
	// reference. The local file is left in place; removing it is the
	// caller's job. A host response without a URL is an error.
	Upload(ctx context.Context, localPath string) (models.Image, error)

	// Delete removes the image keyed by publicID. A result of "ok" or
	// "not found" both count as deleted (see [models.DeletionResult]).
	Delete(ctx context.Context, publicID string) (models.DeletionResult, error)
}

// EventPublisher delivers account events to the event bus. Publication is
// best-effort; callers log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, event models.AccountEvent) error
	Close() error
}
