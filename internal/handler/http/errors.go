// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading requests, before the service layer
// is involved. Callers can match against them with [errors.Is].
var (
	// ErrInvalidBody is returned when a JSON body cannot be decoded.
	ErrInvalidBody = errors.New("request body is not valid JSON")

	// ErrInvalidMultipart is returned when a multipart form cannot be parsed.
	ErrInvalidMultipart = errors.New("request body is not a valid multipart form")

	// ErrBodyTooLarge is returned when a body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request body is too large")

	// ErrAvatarFileMissing and ErrCoverImageFileMissing are returned when a
	// profile image update arrives without its file part.
	ErrAvatarFileMissing     = errors.New("avatar file is missing")
	ErrCoverImageFileMissing = errors.New("cover image file is missing")

	// ErrNoUserInContext is returned by protected handlers when the auth
	// middleware did not store a user. It indicates a wiring mistake.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)
